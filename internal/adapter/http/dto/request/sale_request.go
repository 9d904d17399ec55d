package request

import "encoding/json"

type SaleItemRequest struct {
	ProductID  string `json:"product_id" binding:"required"`
	Quantidade int    `json:"quantidade" binding:"required"`
}

// SaleFinalizeRequest is the payload for closing a POS cart.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado
// Pago schemas; when absent the sale is persisted without charging the
// gateway.
type SaleFinalizeRequest struct {
	CreatedBy string            `json:"created_by"`
	Items     []SaleItemRequest `json:"items" binding:"required"`
	MPPayload json.RawMessage   `json:"mp_payload"`
}
