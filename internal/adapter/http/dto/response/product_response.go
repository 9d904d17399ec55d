package response

import (
	"time"

	"sobujigangas/internal/domain/entities"
)

type ProductResponse struct {
	ID            string    `json:"id"`
	Codigo        string    `json:"codigo"`
	Nome          string    `json:"nome"`
	Cor           string    `json:"cor,omitempty"`
	CodigoBarras  string    `json:"codigo_barras,omitempty"`
	EstoqueAtual  int       `json:"estoque_atual"`
	EstoqueBaixo  bool      `json:"estoque_baixo"`
	ValorUnitario float64   `json:"valor_unitario"`
	ValorVenda    float64   `json:"valor_venda"`
	Markup        float64   `json:"markup"`
	Fornecedor    string    `json:"fornecedor,omitempty"`
	FotoURL       string    `json:"foto_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Codigo:        p.Codigo,
		Nome:          p.Nome,
		Cor:           p.Cor,
		CodigoBarras:  p.CodigoBarras,
		EstoqueAtual:  p.EstoqueAtual,
		EstoqueBaixo:  p.EstoqueBaixo,
		ValorUnitario: p.ValorUnitario,
		ValorVenda:    p.ValorVenda,
		Markup:        p.Markup,
		Fornecedor:    p.Fornecedor,
		FotoURL:       p.FotoURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}
