package interfaces

import (
	"context"

	"sobujigangas/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// AdjustStock applies a signed delta to estoque_atual and returns the
// updated product; the POS flow relies on it after each sale item.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error)
	SetLowStockFlag(ctx context.Context, id string, low bool) error
}
