package response

import (
	"time"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase"
)

type SaleItemResponse struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"product_id"`
	Nome          string  `json:"nome,omitempty"`
	Quantidade    int     `json:"quantidade"`
	ValorUnitario float64 `json:"valor_unitario"`
	Subtotal      float64 `json:"subtotal"`
}

type SaleResponse struct {
	ID        string             `json:"id"`
	Codigo    string             `json:"codigo"`
	Total     float64            `json:"total"`
	CreatedBy string             `json:"created_by,omitempty"`
	DataVenda time.Time          `json:"data_venda"`
	Items     []SaleItemResponse `json:"items"`

	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
	ProviderStatus    string `json:"provider_status,omitempty"`
}

func FromSale(s entities.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ID:            it.ID,
			ProductID:     it.ProductID,
			Nome:          it.Nome,
			Quantidade:    it.Quantidade,
			ValorUnitario: it.ValorUnitario,
			Subtotal:      it.Subtotal,
		})
	}
	return SaleResponse{
		ID:        s.ID,
		Codigo:    s.Codigo,
		Total:     s.Total,
		CreatedBy: s.CreatedBy,
		DataVenda: s.DataVenda,
		Items:     items,
	}
}

func FromSales(ss []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSale(s))
	}
	return out
}

func FromSaleResult(r usecase.FinalizeSaleResult) SaleResponse {
	res := FromSale(r.Sale)
	res.ProviderPaymentID = r.ProviderPaymentID
	res.ProviderStatus = r.ProviderStatus
	return res
}
