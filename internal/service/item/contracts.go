package item

import (
	"context"

	"toyworks-orders/internal/domain"
)

// itemRepository defines storage operations required by the business layer.
type itemRepository interface {
	Get(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Item, error)
	Create(ctx context.Context, it *domain.Item) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialItemUpdate) (bool, error)
}
