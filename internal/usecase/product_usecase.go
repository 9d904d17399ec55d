package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidStockValue = errors.New("invalid stock value")
)

type ProductInput struct {
	Codigo        string
	Nome          string
	Cor           string
	CodigoBarras  string
	EstoqueAtual  int
	ValorUnitario float64
	ValorVenda    float64
	Fornecedor    string
	FotoURL       string
}

// IProductUseCase exposes catalog operations.

type IProductUseCase interface {
	CreateProduct(ctx context.Context, in ProductInput) (entities.Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context, search string) ([]entities.Product, error)
	RestockProduct(ctx context.Context, id string, quantidade int, createdBy string) (entities.Product, error)
}

type ProductUseCase struct {
	repo      interfaces.IProductRepository
	movements interfaces.IStockMovementRepository
	now       func() time.Time
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, movements interfaces.IStockMovementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movements: movements, now: time.Now}
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, in ProductInput) (entities.Product, error) {
	p, err := productFromInput(in)
	if err != nil {
		return entities.Product{}, err
	}

	now := u.now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	log.Info().Str("product_id", created.ID).Str("codigo", created.Codigo).Msg("product created")
	return created, nil
}

func (u *ProductUseCase) UpdateProduct(ctx context.Context, id string, in ProductInput) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	p, err := productFromInput(in)
	if err != nil {
		return entities.Product{}, err
	}
	p.ID = existing.ID
	p.EstoqueBaixo = existing.EstoqueBaixo
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = u.now().UTC()

	return u.repo.Update(ctx, p)
}

func (u *ProductUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// ListProducts returns the catalog, optionally filtered by a
// case-insensitive substring on nome or codigo.
func (u *ProductUseCase) ListProducts(ctx context.Context, search string) ([]entities.Product, error) {
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return products, nil
	}
	out := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if containsFold(p.Nome, search) || containsFold(p.Codigo, search) {
			out = append(out, p)
		}
	}
	return out, nil
}

// RestockProduct adds stock and records an entrada movement.
func (u *ProductUseCase) RestockProduct(ctx context.Context, id string, quantidade int, createdBy string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if quantidade <= 0 {
		return entities.Product{}, ErrInvalidStockValue
	}

	updated, err := u.repo.AdjustStock(ctx, id, quantidade)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	if _, err := u.movements.Record(ctx, entities.StockMovement{
		ID:         uuid.NewString(),
		ProductID:  updated.ID,
		Tipo:       entities.MovementEntrada,
		Quantidade: quantidade,
		CreatedBy:  strings.TrimSpace(createdBy),
		CreatedAt:  u.now().UTC(),
	}); err != nil {
		return entities.Product{}, err
	}
	log.Info().Str("product_id", updated.ID).Int("quantidade", quantidade).Msg("product restocked")
	return updated, nil
}

func productFromInput(in ProductInput) (entities.Product, error) {
	codigo := strings.TrimSpace(in.Codigo)
	nome := strings.TrimSpace(in.Nome)
	if codigo == "" || nome == "" || in.EstoqueAtual < 0 || in.ValorUnitario < 0 || in.ValorVenda < 0 {
		return entities.Product{}, ErrInvalidProduct
	}
	return entities.Product{
		Codigo:        codigo,
		Nome:          nome,
		Cor:           strings.TrimSpace(in.Cor),
		CodigoBarras:  strings.TrimSpace(in.CodigoBarras),
		EstoqueAtual:  in.EstoqueAtual,
		ValorUnitario: in.ValorUnitario,
		ValorVenda:    in.ValorVenda,
		Markup:        entities.ComputeMarkup(in.ValorUnitario, in.ValorVenda),
		Fornecedor:    strings.TrimSpace(in.Fornecedor),
		FotoURL:       strings.TrimSpace(in.FotoURL),
	}, nil
}
