package usecase

import (
	"context"
	"errors"
	"strings"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrInvalidAlertRanges = errors.New("invalid alert ranges")

// AlertedProduct is a catalog entry annotated with its stock color.
type AlertedProduct struct {
	entities.Product
	Status entities.StockStatus `json:"status"`
}

type AlertRangesInput struct {
	NivelVerdeMin    int
	NivelVerdeMax    int
	NivelAmareloMin  int
	NivelAmareloMax  int
	NivelVermelhoMax int
}

// IStockAlertUseCase exposes the color-coded stock alert operations.

type IStockAlertUseCase interface {
	ListAlertedProducts(ctx context.Context, search string) ([]AlertedProduct, error)
	SaveAlertRanges(ctx context.Context, productID string, in AlertRangesInput) (entities.StockAlert, error)
	RefreshLowStockFlags(ctx context.Context) (int, error)
}

type StockAlertUseCase struct {
	repo     interfaces.IStockAlertRepository
	products interfaces.IProductRepository
}

var _ IStockAlertUseCase = (*StockAlertUseCase)(nil)

func NewStockAlertUseCase(repo interfaces.IStockAlertRepository, products interfaces.IProductRepository) *StockAlertUseCase {
	return &StockAlertUseCase{repo: repo, products: products}
}

// ListAlertedProducts returns only products currently in the vermelho or
// amarelo band, classified against their saved ranges or the defaults.
func (u *StockAlertUseCase) ListAlertedProducts(ctx context.Context, search string) ([]AlertedProduct, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)
	out := make([]AlertedProduct, 0)
	for _, p := range products {
		if search != "" && !containsFold(p.Nome, search) && !containsFold(p.Codigo, search) {
			continue
		}
		status, err := u.classify(ctx, p)
		if err != nil {
			return nil, err
		}
		if status.Color == entities.StockVermelho || status.Color == entities.StockAmarelo {
			out = append(out, AlertedProduct{Product: p, Status: status})
		}
	}
	return out, nil
}

func (u *StockAlertUseCase) SaveAlertRanges(ctx context.Context, productID string, in AlertRangesInput) (entities.StockAlert, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.StockAlert{}, ErrInvalidProductID
	}
	if in.NivelVerdeMin > in.NivelVerdeMax || in.NivelAmareloMin > in.NivelAmareloMax || in.NivelVermelhoMax < 0 {
		return entities.StockAlert{}, ErrInvalidAlertRanges
	}

	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.StockAlert{}, err
	}
	if p.ID == "" {
		return entities.StockAlert{}, ErrProductNotFound
	}

	existing, err := u.repo.GetByProductID(ctx, productID)
	if err != nil {
		return entities.StockAlert{}, err
	}

	a := entities.StockAlert{
		ID:               existing.ID,
		ProductID:        productID,
		NivelVerdeMin:    in.NivelVerdeMin,
		NivelVerdeMax:    in.NivelVerdeMax,
		NivelAmareloMin:  in.NivelAmareloMin,
		NivelAmareloMax:  in.NivelAmareloMax,
		NivelVermelhoMax: in.NivelVermelhoMax,
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	saved, err := u.repo.Upsert(ctx, a)
	if err != nil {
		return entities.StockAlert{}, err
	}
	log.Info().Str("product_id", productID).Msg("stock alert ranges saved")
	return saved, nil
}

// RefreshLowStockFlags recomputes every product's estoque_baixo flag
// from its current color band. Run daily by the scheduler; returns the
// number of flags that changed.
func (u *StockAlertUseCase) RefreshLowStockFlags(ctx context.Context) (int, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, p := range products {
		status, err := u.classify(ctx, p)
		if err != nil {
			return changed, err
		}
		low := status.Color == entities.StockVermelho
		if low == p.EstoqueBaixo {
			continue
		}
		if err := u.products.SetLowStockFlag(ctx, p.ID, low); err != nil {
			return changed, err
		}
		changed++
	}
	if changed > 0 {
		log.Info().Int("changed", changed).Msg("low stock flags refreshed")
	}
	return changed, nil
}

func (u *StockAlertUseCase) classify(ctx context.Context, p entities.Product) (entities.StockStatus, error) {
	alert, err := u.repo.GetByProductID(ctx, p.ID)
	if err != nil {
		return entities.StockStatus{}, err
	}
	if alert.ID == "" {
		alert = entities.DefaultStockAlert(p.ID)
	}
	return entities.ClassifyStock(p.EstoqueAtual, alert), nil
}
