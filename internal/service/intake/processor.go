package intake

import (
	"context"
	"errors"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
	"toyworks-orders/internal/logx"
)

// Processor applies upstream order events as status overrides. Events for
// unknown orders or with unmapped statuses are skipped, not failed, so the
// consumer never wedges on stale upstream data.
type Processor struct {
	orders  OrdersPort
	logger  logx.Logger
	factory *actionFactory
}

// NewProcessor creates a new intake.Processor
func NewProcessor(orders OrdersPort, logger logx.Logger) *Processor {
	p := &Processor{orders: orders, logger: logger}
	p.factory = newActionFactory(p.onApproved, p.onPacked, p.onCancelled)
	return p
}

// Handle processes a single intake.Event
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("skipping event with unmapped status",
			logx.String("order_code", e.OrderCode),
			logx.String("status", e.Status),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onApproved(ctx context.Context, e Event) error {
	return p.setStatus(ctx, e, domain.StatusPending)
}

func (p *Processor) onPacked(ctx context.Context, e Event) error {
	return p.setStatus(ctx, e, domain.StatusPacked)
}

func (p *Processor) onCancelled(ctx context.Context, e Event) error {
	return p.setStatus(ctx, e, domain.StatusCancelled)
}

func (p *Processor) setStatus(ctx context.Context, e Event, status domain.OrderStatus) error {
	err := p.orders.SetStatusByCode(ctx, e.OrderCode, status)
	if errors.Is(err, apperr.NotFound) {
		p.logger.Warn("skipping event for unknown order",
			logx.String("order_code", e.OrderCode),
			logx.String("status", e.Status),
		)
		return nil
	}
	return err
}
