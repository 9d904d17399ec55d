package interfaces

import (
	"context"

	"sobujigangas/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Listing returns fully materialized orders: line items resolved through
// the order_id index and product snapshots (codigo/nome/cor) attached,
// ordered by creation time descending. ReplaceItems must be atomic from
// the caller's perspective (delete-all + insert-new in one transaction).

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order, items []entities.OrderItem) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListWithItems(ctx context.Context) ([]entities.Order, error)
	ListCodes(ctx context.Context) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	ReplaceItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	Delete(ctx context.Context, id string) error
}
