package request

type ProductRequest struct {
	Codigo        string  `json:"codigo" binding:"required"`
	Nome          string  `json:"nome" binding:"required"`
	Cor           string  `json:"cor"`
	CodigoBarras  string  `json:"codigo_barras"`
	EstoqueAtual  int     `json:"estoque_atual"`
	ValorUnitario float64 `json:"valor_unitario"`
	ValorVenda    float64 `json:"valor_venda"`
	Fornecedor    string  `json:"fornecedor"`
	FotoURL       string  `json:"foto_url"`
}

// ProductRestockRequest adds stock to a product and records an entrada
// movement.
type ProductRestockRequest struct {
	Quantidade int    `json:"quantidade" binding:"required"`
	CreatedBy  string `json:"created_by"`
}
