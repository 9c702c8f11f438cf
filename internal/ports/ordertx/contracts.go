package ordertx

import (
	"context"

	"toyworks-orders/internal/domain"
)

// Repository is the transaction-scoped write surface used when punching an
// order: the order row, its lines and the first log entry land atomically.
type Repository interface {
	InsertOrder(ctx context.Context, o *domain.Order) error
	InsertLine(ctx context.Context, l *domain.OrderLine) error
	InsertLog(ctx context.Context, entry *domain.OrderLog) error
}
