package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidSaleItem       = errors.New("invalid sale item")
	ErrSaleProductNotFound   = errors.New("sale product not found")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrInvalidPaymentPayload = errors.New("invalid payment payload")
)

type SaleItemInput struct {
	ProductID  string
	Quantidade int
}

// FinalizeSaleInput carries the POS cart. PaymentPayload, when present,
// is forwarded to the payment gateway before anything is persisted; its
// transaction_amount is always overwritten with the computed total.
type FinalizeSaleInput struct {
	CreatedBy      string
	Items          []SaleItemInput
	PaymentPayload json.RawMessage
}

type FinalizeSaleResult struct {
	Sale              entities.Sale
	ProviderPaymentID string
	ProviderStatus    string
}

// ISaleUseCase exposes the sales terminal operations.

type ISaleUseCase interface {
	FinalizeSale(ctx context.Context, in FinalizeSaleInput) (FinalizeSaleResult, error)
	ListSales(ctx context.Context) ([]entities.Sale, error)
}

type SaleUseCase struct {
	repo      interfaces.ISaleRepository
	products  interfaces.IProductRepository
	movements interfaces.IStockMovementRepository
	gateway   interfaces.IPaymentGateway
	now       func() time.Time
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(repo interfaces.ISaleRepository, products interfaces.IProductRepository, movements interfaces.IStockMovementRepository, gateway interfaces.IPaymentGateway) *SaleUseCase {
	return &SaleUseCase{repo: repo, products: products, movements: movements, gateway: gateway, now: time.Now}
}

func (u *SaleUseCase) FinalizeSale(ctx context.Context, in FinalizeSaleInput) (FinalizeSaleResult, error) {
	if len(in.Items) == 0 {
		return FinalizeSaleResult{}, ErrEmptyCart
	}

	now := u.now().UTC()
	sale := entities.Sale{
		ID:        uuid.NewString(),
		Codigo:    fmt.Sprintf("VD%d", now.UnixMilli()),
		CreatedBy: strings.TrimSpace(in.CreatedBy),
		DataVenda: now,
	}

	items := make([]entities.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantidade <= 0 {
			return FinalizeSaleResult{}, ErrInvalidSaleItem
		}
		p, err := u.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return FinalizeSaleResult{}, err
		}
		if p.ID == "" {
			return FinalizeSaleResult{}, ErrSaleProductNotFound
		}
		if it.Quantidade > p.EstoqueAtual {
			log.Warn().Str("product_id", p.ID).Int("estoque", p.EstoqueAtual).Int("quantidade", it.Quantidade).Msg("sale rejected, insufficient stock")
			return FinalizeSaleResult{}, ErrInsufficientStock
		}
		subtotal := p.ValorVenda * float64(it.Quantidade)
		items = append(items, entities.SaleItem{
			ID:            uuid.NewString(),
			SaleID:        sale.ID,
			ProductID:     p.ID,
			Quantidade:    it.Quantidade,
			ValorUnitario: p.ValorVenda,
			Subtotal:      subtotal,
			Nome:          p.Nome,
		})
		sale.Total += subtotal
	}

	result := FinalizeSaleResult{}
	if len(in.PaymentPayload) > 0 {
		id, status, err := u.chargeGateway(ctx, sale, in.PaymentPayload)
		if err != nil {
			return FinalizeSaleResult{}, err
		}
		result.ProviderPaymentID = id
		result.ProviderStatus = status
	}

	created, err := u.repo.Create(ctx, sale, items)
	if err != nil {
		return FinalizeSaleResult{}, err
	}
	created.Items = items

	// Stock is adjusted item by item after the sale row exists; there
	// is no cross-table transaction covering the movements.
	for _, it := range items {
		if _, err := u.products.AdjustStock(ctx, it.ProductID, -it.Quantidade); err != nil {
			log.Error().Err(err).Str("sale_id", created.ID).Str("product_id", it.ProductID).Msg("stock adjustment failed")
			return FinalizeSaleResult{}, err
		}
		if _, err := u.movements.Record(ctx, entities.StockMovement{
			ID:         uuid.NewString(),
			ProductID:  it.ProductID,
			Tipo:       entities.MovementSaida,
			Quantidade: it.Quantidade,
			CreatedBy:  sale.CreatedBy,
			CreatedAt:  now,
		}); err != nil {
			return FinalizeSaleResult{}, err
		}
	}

	log.Info().Str("sale_id", created.ID).Str("codigo", created.Codigo).Float64("total", created.Total).Msg("sale finalized")
	result.Sale = created
	return result, nil
}

func (u *SaleUseCase) ListSales(ctx context.Context) ([]entities.Sale, error) {
	return u.repo.ListWithItems(ctx)
}

func (u *SaleUseCase) chargeGateway(ctx context.Context, sale entities.Sale, payload json.RawMessage) (string, string, error) {
	if u.gateway == nil {
		return "", "", ErrGatewayNotConfigured
	}
	if !json.Valid(payload) {
		return "", "", ErrInvalidPaymentPayload
	}

	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return "", "", ErrInvalidPaymentPayload
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = sale.Codigo
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Venda %s", sale.Codigo)
	}
	// The source of truth for amount is the computed cart total.
	req["transaction_amount"] = sale.Total
	enriched, err := json.Marshal(req)
	if err != nil {
		return "", "", err
	}

	id, status, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Error().Err(err).Str("codigo", sale.Codigo).Msg("payment gateway failed")
		return "", "", err
	}
	log.Info().Str("codigo", sale.Codigo).Str("provider_payment_id", id).Str("provider_status", status).Msg("payment approved")
	return id, status, nil
}
