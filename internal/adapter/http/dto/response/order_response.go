package response

import (
	"time"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase"
)

type OrderItemResponse struct {
	ID         string `json:"id"`
	ProductID  string `json:"product_id"`
	Quantidade int    `json:"quantidade"`
	Codigo     string `json:"codigo,omitempty"`
	Nome       string `json:"nome,omitempty"`
	Cor        string `json:"cor,omitempty"`
}

// OrderResponse is a purchase order as rendered in the list screen:
// the stored fields plus the derived alert view. dias_restantes is
// omitted for orders without a delivery deadline.
type OrderResponse struct {
	ID                  string              `json:"id"`
	Codigo              string              `json:"codigo"`
	Status              string              `json:"status"`
	StatusDisplay       string              `json:"status_display"`
	AlertaCor           string              `json:"alerta_cor"`
	DiasRestantes       *int                `json:"dias_restantes,omitempty"`
	DataCriacao         time.Time           `json:"data_criacao"`
	DataCriacaoBR       string              `json:"data_criacao_br"`
	PrazoEntregaDias    *int                `json:"prazo_entrega_dias,omitempty"`
	DataPrevistaEntrega *time.Time          `json:"data_prevista_entrega,omitempty"`
	Fornecedor          string              `json:"fornecedor,omitempty"`
	ContatoFornecedor   string              `json:"contato_fornecedor,omitempty"`
	CreatedBy           string              `json:"created_by,omitempty"`
	Items               []OrderItemResponse `json:"items"`
}

func FromClassifiedOrder(c usecase.ClassifiedOrder) OrderResponse {
	res := OrderResponse{
		ID:                  c.Order.ID,
		Codigo:              c.Order.Codigo,
		Status:              string(c.Order.Status),
		StatusDisplay:       c.StatusDisplay,
		AlertaCor:           string(c.AlertColor),
		DataCriacao:         c.Order.DataCriacao,
		DataCriacaoBR:       usecase.FormatDateBR(c.Order.DataCriacao),
		PrazoEntregaDias:    c.Order.PrazoEntregaDias,
		DataPrevistaEntrega: c.Order.DataPrevistaEntrega,
		Fornecedor:          c.Order.Fornecedor,
		ContatoFornecedor:   c.Order.ContatoFornecedor,
		CreatedBy:           c.Order.CreatedBy,
		Items:               fromOrderItems(c.Order.Items),
	}
	if c.HasDeadline {
		dias := c.DaysRemaining
		res.DiasRestantes = &dias
	}
	return res
}

func FromClassifiedOrders(cs []usecase.ClassifiedOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClassifiedOrder(c))
	}
	return out
}

// FromOrder renders an order without the derived view, for mutation
// endpoints that return the stored state only.
func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                  o.ID,
		Codigo:              o.Codigo,
		Status:              string(o.Status),
		StatusDisplay:       o.Status.Label(),
		DataCriacao:         o.DataCriacao,
		DataCriacaoBR:       usecase.FormatDateBR(o.DataCriacao),
		PrazoEntregaDias:    o.PrazoEntregaDias,
		DataPrevistaEntrega: o.DataPrevistaEntrega,
		Fornecedor:          o.Fornecedor,
		ContatoFornecedor:   o.ContatoFornecedor,
		CreatedBy:           o.CreatedBy,
		Items:               fromOrderItems(o.Items),
	}
}

func fromOrderItems(items []entities.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantidade: it.Quantidade,
			Codigo:     it.Codigo,
			Nome:       it.Nome,
			Cor:        it.Cor,
		})
	}
	return out
}
