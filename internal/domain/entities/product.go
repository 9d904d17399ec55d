package entities

import "time"

// Product is a catalog item persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - products table, PK: id
//
// Markup is derived on every write:
// (ValorVenda - ValorUnitario) / ValorUnitario * 100 when both are
// positive, zero otherwise. EstoqueBaixo is a denormalized convenience
// flag refreshed by the daily scheduler from the alert ranges.

type Product struct {
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

// ComputeMarkup applies the catalog markup rule.
func ComputeMarkup(valorUnitario, valorVenda float64) float64 {
	if valorUnitario <= 0 || valorVenda <= 0 {
		return 0
	}
	return (valorVenda - valorUnitario) / valorUnitario * 100
}

// StockAlert holds the per-product color thresholds. One row per
// product (stock_alerts table, PK: id, GSI product_id-index).
type StockAlert struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	NivelVerdeMin    int       `json:"nivel_verde_min"`
	NivelVerdeMax    int       `json:"nivel_verde_max"`
	NivelAmareloMin  int       `json:"nivel_amarelo_min"`
	NivelAmareloMax  int       `json:"nivel_amarelo_max"`
	NivelVermelhoMax int       `json:"nivel_vermelho_max"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DefaultStockAlert is applied when a product has no saved ranges:
// verde 501-1000, amarelo 201-500, vermelho ate 200.
func DefaultStockAlert(productID string) StockAlert {
	return StockAlert{
		ProductID:        productID,
		NivelVerdeMin:    501,
		NivelVerdeMax:    1000,
		NivelAmareloMin:  201,
		NivelAmareloMax:  500,
		NivelVermelhoMax: 200,
	}
}

// StockStatus is the color bucket of a product's current stock.
type StockStatus struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

const (
	StockVerde    = "verde"
	StockAmarelo  = "amarelo"
	StockVermelho = "vermelho"
	StockSemCor   = "sem_cor"
)

// ClassifyStock maps the current stock level onto the alert ranges.
// Ranges are checked green, yellow, red in that order; a stock level
// outside every range yields sem_cor.
func ClassifyStock(stock int, alert StockAlert) StockStatus {
	switch {
	case stock >= alert.NivelVerdeMin && stock <= alert.NivelVerdeMax:
		return StockStatus{Color: StockVerde, Label: "Verde"}
	case stock >= alert.NivelAmareloMin && stock <= alert.NivelAmareloMax:
		return StockStatus{Color: StockAmarelo, Label: "Amarelo"}
	case stock <= alert.NivelVermelhoMax:
		return StockStatus{Color: StockVermelho, Label: "Vermelho"}
	default:
		return StockStatus{Color: StockSemCor, Label: "Sem alerta"}
	}
}
