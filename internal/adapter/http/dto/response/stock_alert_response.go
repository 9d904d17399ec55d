package response

import (
	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase"
)

type StockAlertResponse struct {
	ID               string `json:"id"`
	ProductID        string `json:"product_id"`
	NivelVerdeMin    int    `json:"nivel_verde_min"`
	NivelVerdeMax    int    `json:"nivel_verde_max"`
	NivelAmareloMin  int    `json:"nivel_amarelo_min"`
	NivelAmareloMax  int    `json:"nivel_amarelo_max"`
	NivelVermelhoMax int    `json:"nivel_vermelho_max"`
}

func FromStockAlert(a entities.StockAlert) StockAlertResponse {
	return StockAlertResponse{
		ID:               a.ID,
		ProductID:        a.ProductID,
		NivelVerdeMin:    a.NivelVerdeMin,
		NivelVerdeMax:    a.NivelVerdeMax,
		NivelAmareloMin:  a.NivelAmareloMin,
		NivelAmareloMax:  a.NivelAmareloMax,
		NivelVermelhoMax: a.NivelVermelhoMax,
	}
}

// AlertedProductResponse is a catalog entry in the vermelho or amarelo
// band, as listed on the alerts screen.
type AlertedProductResponse struct {
	ProductResponse
	StatusColor string `json:"status_color"`
	StatusLabel string `json:"status_label"`
}

func FromAlertedProducts(aps []usecase.AlertedProduct) []AlertedProductResponse {
	out := make([]AlertedProductResponse, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AlertedProductResponse{
			ProductResponse: FromProduct(ap.Product),
			StatusColor:     ap.Status.Color,
			StatusLabel:     ap.Status.Label,
		})
	}
	return out
}
