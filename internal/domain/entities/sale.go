package entities

import "time"

// Sale is a finished point-of-sale transaction.
//
// Storage model (DynamoDB):
//   - sales table, PK: id
//   - sale_items table, PK: id, GSI sale_id-index (PK: sale_id)

type Sale struct {
	ID        string     `json:"id"`
	Codigo    string     `json:"codigo"`
	Total     float64    `json:"total"`
	CreatedBy string     `json:"created_by,omitempty"`
	DataVenda time.Time  `json:"data_venda"`
	Items     []SaleItem `json:"items,omitempty"`
}

type SaleItem struct {
	ID            string  `json:"id"`
	SaleID        string  `json:"sale_id"`
	ProductID     string  `json:"product_id"`
	Quantidade    int     `json:"quantidade"`
	ValorUnitario float64 `json:"valor_unitario"`
	Subtotal      float64 `json:"subtotal"`

	Nome string `json:"nome,omitempty"`
}

// MovementType discriminates stock movements.
const (
	MovementEntrada = "entrada"
	MovementSaida   = "saida"
)

// StockMovement records one stock change for the analytics series
// (stock_movements table, PK: id, GSI product_id-index).
type StockMovement struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Tipo       string    `json:"tipo"`
	Quantidade int       `json:"quantidade"`
	CreatedBy  string    `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
