package entities

import "time"

// OrderStatus represents the manual lifecycle of a purchase order (pedido).
//
// Domain notes:
//   - Status is only changed by explicit user action; automatic escalation
//     (overdue, in transit by age) lives in the derived classification and
//     is never written back to the store.
//   - Any status may be set from any other status; no transition table
//     is enforced.

type OrderStatus string

const (
	OrderStatusEmitido           OrderStatus = "emitido"
	OrderStatusEnviadoFornecedor OrderStatus = "enviado_fornecedor"
	OrderStatusEmTransito        OrderStatus = "em_transito"
	OrderStatusCancelado         OrderStatus = "cancelado"
	OrderStatusDevolvido         OrderStatus = "devolvido"
	OrderStatusRecebido          OrderStatus = "recebido"
)

// Label returns the human-facing pt-BR label for a manual status.
// Unknown values are returned verbatim so the list always renders.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusEmitido:
		return "Emitido"
	case OrderStatusEnviadoFornecedor:
		return "Enviado ao Fornecedor"
	case OrderStatusEmTransito:
		return "Em Trânsito"
	case OrderStatusCancelado:
		return "Cancelado"
	case OrderStatusDevolvido:
		return "Devolvido"
	case OrderStatusRecebido:
		return "Recebido"
	default:
		return string(s)
	}
}

// IsTerminal reports whether date-based classification no longer applies.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelado || s == OrderStatusDevolvido || s == OrderStatusRecebido
}

// OrderItem is one line of a purchase order. Codigo/Nome/Cor are the
// product snapshot resolved at read time; only ProductID and Quantidade
// are persisted on the item row.
type OrderItem struct {
	ID         string `json:"id"`
	OrderID    string `json:"order_id"`
	ProductID  string `json:"product_id"`
	Quantidade int    `json:"quantidade"`

	Codigo string `json:"codigo,omitempty"`
	Nome   string `json:"nome,omitempty"`
	Cor    string `json:"cor,omitempty"`
}

// Order is the purchase order entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - orders table, PK: id
//   - order_items table, PK: id, GSI order_id-index (PK: order_id)
//
// PrazoEntregaDias is the supplier lead time in days; when present,
// DataPrevistaEntrega is derived once at creation
// (DataCriacao + PrazoEntregaDias days) and stored, never recomputed.

type Order struct {
	ID                  string      `json:"id"`
	Codigo              string      `json:"codigo"`
	Status              OrderStatus `json:"status"`
	DataCriacao         time.Time   `json:"data_criacao"`
	PrazoEntregaDias    *int        `json:"prazo_entrega_dias,omitempty"`
	DataPrevistaEntrega *time.Time  `json:"data_prevista_entrega,omitempty"`
	Fornecedor          string      `json:"fornecedor,omitempty"`
	ContatoFornecedor   string      `json:"contato_fornecedor,omitempty"`
	CreatedBy           string      `json:"created_by,omitempty"`
	Items               []OrderItem `json:"items,omitempty"`
}

// EditableWindow is how long after creation an order's items may still be
// replaced and the order deleted regardless of status.
const EditableWindow = 24 * time.Hour

// IsEditable reports whether the order's line items may be replaced at
// the given instant: inside the 24h window and not cancelled/returned.
func (o Order) IsEditable(now time.Time) bool {
	if o.Status == OrderStatusCancelado || o.Status == OrderStatusDevolvido {
		return false
	}
	return now.Sub(o.DataCriacao) <= EditableWindow
}

// IsDeletable reports whether the order may be removed: inside the
// editable window, or at any time once it reached a terminal state.
func (o Order) IsDeletable(now time.Time) bool {
	if o.Status.IsTerminal() {
		return true
	}
	return now.Sub(o.DataCriacao) <= EditableWindow
}
