package request

// StockAlertRequest sets the per-product color thresholds.
type StockAlertRequest struct {
	NivelVerdeMin    int `json:"nivel_verde_min"`
	NivelVerdeMax    int `json:"nivel_verde_max"`
	NivelAmareloMin  int `json:"nivel_amarelo_min"`
	NivelAmareloMax  int `json:"nivel_amarelo_max"`
	NivelVermelhoMax int `json:"nivel_vermelho_max"`
}
