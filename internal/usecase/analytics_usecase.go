package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"
)

// MonthlySalesPoint is one bar of the monthly sales chart: a pt-BR
// month label, the revenue and the quantity sold per product name.
type MonthlySalesPoint struct {
	Mes         string         `json:"mes"`
	Total       float64        `json:"total"`
	Quantidades map[string]int `json:"quantidades"`
}

// StockMovementPoint is one day of the entrada/saida movement chart.
type StockMovementPoint struct {
	Data    string `json:"data"`
	Entrada int    `json:"entrada"`
	Saida   int    `json:"saida"`
}

// IAnalyticsUseCase exposes the dashboard chart series.

type IAnalyticsUseCase interface {
	MonthlySales(ctx context.Context) ([]MonthlySalesPoint, error)
	StockMovements(ctx context.Context, productID string) ([]StockMovementPoint, error)
}

type AnalyticsUseCase struct {
	sales     interfaces.ISaleRepository
	movements interfaces.IStockMovementRepository
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(sales interfaces.ISaleRepository, movements interfaces.IStockMovementRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{sales: sales, movements: movements}
}

// MonthlySales groups every sale by month, oldest month first.
func (u *AnalyticsUseCase) MonthlySales(ctx context.Context) ([]MonthlySalesPoint, error) {
	sales, err := u.sales.ListWithItems(ctx)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		at    time.Time
		point MonthlySalesPoint
	}
	buckets := map[string]*bucket{}
	for _, s := range sales {
		key := s.DataVenda.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				at:    s.DataVenda,
				point: MonthlySalesPoint{Mes: monthLabelBR(s.DataVenda), Quantidades: map[string]int{}},
			}
			buckets[key] = b
		}
		b.point.Total += s.Total
		for _, it := range s.Items {
			nome := strings.ToLower(strings.TrimSpace(it.Nome))
			if nome == "" {
				continue
			}
			b.point.Quantidades[nome] += it.Quantidade
		}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].at.Before(ordered[j].at) })

	out := make([]MonthlySalesPoint, 0, len(ordered))
	for _, b := range ordered {
		out = append(out, b.point)
	}
	return out, nil
}

// StockMovements groups movements by day, oldest first, optionally
// filtered to a single product.
func (u *AnalyticsUseCase) StockMovements(ctx context.Context, productID string) ([]StockMovementPoint, error) {
	movements, err := u.movements.List(ctx, strings.TrimSpace(productID))
	if err != nil {
		return nil, err
	}

	type bucket struct {
		at    time.Time
		point StockMovementPoint
	}
	buckets := map[string]*bucket{}
	for _, m := range movements {
		key := m.CreatedAt.Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{at: m.CreatedAt, point: StockMovementPoint{Data: m.CreatedAt.Format("02/01")}}
			buckets[key] = b
		}
		if m.Tipo == entities.MovementEntrada {
			b.point.Entrada += m.Quantidade
		} else {
			b.point.Saida += m.Quantidade
		}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].at.Before(ordered[j].at) })

	out := make([]StockMovementPoint, 0, len(ordered))
	for _, b := range ordered {
		out = append(out, b.point)
	}
	return out, nil
}

var monthAbbrBR = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

func monthLabelBR(t time.Time) string {
	return fmt.Sprintf("%s/%s", monthAbbrBR[t.Month()-1], t.Format("06"))
}
