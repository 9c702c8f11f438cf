//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch

package dispatch

import (
	"context"

	"toyworks-orders/internal/domain"
)

// orderStore defines the persistence operations required by the
// reconciliation orchestrator. Reads follow the portal's access pattern
// (order with lines, events oldest first); writes are the four staged steps
// of one save.
type orderStore interface {
	Get(ctx context.Context, id int64) (*domain.OrderDetail, error)
	ListDispatchEvents(ctx context.Context, orderID int64) ([]domain.DispatchEvent, error)
	InsertDispatchEvents(ctx context.Context, events []domain.DispatchEvent) error
	UpdateLineDispatch(ctx context.Context, lineID, dispatchedQty int64, remarks *string) error
	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
	InsertLogs(ctx context.Context, logs []domain.OrderLog) error
}
