package request

type OrderItemRequest struct {
	ProductID  string `json:"product_id" binding:"required"`
	Quantidade int    `json:"quantidade" binding:"required"`
}

// OrderCreateRequest is the payload for opening a purchase order. The
// order code is never accepted from the caller; it is always generated
// server-side.
type OrderCreateRequest struct {
	PrazoEntregaDias  int                `json:"prazo_entrega_dias" binding:"required"`
	Fornecedor        string             `json:"fornecedor"`
	ContatoFornecedor string             `json:"contato_fornecedor"`
	CreatedBy         string             `json:"created_by"`
	Items             []OrderItemRequest `json:"items" binding:"required"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemsReplaceRequest swaps the full item set of an editable order.
type OrderItemsReplaceRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required"`
}
