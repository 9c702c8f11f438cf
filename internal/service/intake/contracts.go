//go:generate mockgen -source=contracts.go -destination=intake_mocks_test.go -package=intake_test

package intake

import (
	"context"

	"toyworks-orders/internal/domain"
)

// OrdersPort abstracts the subset of order service operations needed by the
// intake Processor when handling upstream order events
type OrdersPort interface {
	SetStatusByCode(ctx context.Context, code string, status domain.OrderStatus) error
}
