package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"toyworks-orders/internal/domain"
	"toyworks-orders/internal/ports/ordertx"
)

// orderRepository defines the storage operations required by the order
// business layer.
type orderRepository interface {
	WithTx(ctx context.Context, fn func(tx ordertx.Repository) error) error
	Get(ctx context.Context, id int64) (*domain.OrderDetail, error)
	GetByCode(ctx context.Context, code string) (*domain.Order, error)
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	UpdatePartial(ctx context.Context, u domain.PartialOrderUpdate) (bool, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
	UpdateTotals(ctx context.Context, orderID, totalQty int64, totalValue decimal.Decimal) error
	InsertLine(ctx context.Context, l *domain.OrderLine) error
	DeleteLine(ctx context.Context, orderID, lineID int64) (bool, error)
	ListLogs(ctx context.Context, orderID int64, limit int) ([]domain.OrderLog, error)
	InsertLogs(ctx context.Context, logs []domain.OrderLog) error
	ListDispatchEvents(ctx context.Context, orderID int64) ([]domain.DispatchEvent, error)
	CountOverdue(ctx context.Context, now time.Time) (int64, error)
}

// itemStore resolves catalog items referenced by order lines.
type itemStore interface {
	GetMany(ctx context.Context, ids []int64) ([]domain.Item, error)
}

// partyStore resolves the dealer a new order is punched against.
type partyStore interface {
	Get(ctx context.Context, id int64) (*domain.Party, error)
}
