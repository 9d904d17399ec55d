package interfaces

import (
	"context"

	"sobujigangas/internal/domain/entities"
)

// ISaleRepository abstracts DynamoDB persistence for Sale.

type ISaleRepository interface {
	Create(ctx context.Context, s entities.Sale, items []entities.SaleItem) (entities.Sale, error)
	ListWithItems(ctx context.Context) ([]entities.Sale, error)
}

// IStockMovementRepository records and lists stock movements for the
// analytics series. List returns every movement, oldest first, filtered
// by product when productID is non-empty.

type IStockMovementRepository interface {
	Record(ctx context.Context, m entities.StockMovement) (entities.StockMovement, error)
	List(ctx context.Context, productID string) ([]entities.StockMovement, error)
}
