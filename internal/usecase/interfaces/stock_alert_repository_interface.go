package interfaces

import (
	"context"

	"sobujigangas/internal/domain/entities"
)

// IStockAlertRepository abstracts DynamoDB persistence for StockAlert.
// GetByProductID returns a zero-ID alert when the product has no saved
// ranges; callers fall back to the defaults.

type IStockAlertRepository interface {
	GetByProductID(ctx context.Context, productID string) (entities.StockAlert, error)
	Upsert(ctx context.Context, a entities.StockAlert) (entities.StockAlert, error)
}
