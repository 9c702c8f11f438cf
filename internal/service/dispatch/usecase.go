package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
	"toyworks-orders/internal/logx"
)

// Counters are the dispatch metrics. Nil fields are simply not incremented.
type Counters struct {
	Saved    prometheus.Counter
	Rejected prometheus.Counter
	Clamped  prometheus.Counter
}

// Service orchestrates dispatch reconciliation for one order at a time:
// per-line validation, staging of events/updates/logs, the status transition
// and the ordered persistence of one save operation.
type Service struct {
	store            orderStore
	logger           logx.Logger
	operationTimeout time.Duration
	counters         Counters
	now              func() time.Time
}

// NewService creates and configures a dispatch Service.
func NewService(store orderStore, logger logx.Logger, timeout time.Duration, counters Counters) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		store:            store,
		logger:           logger,
		operationTimeout: timeout,
		counters:         counters,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// LineInput is one line of a dispatch submission. Delta is the raw "dispatch
// today" text as typed. A nil Note means the note was not touched.
type LineInput struct {
	LineID int64
	Delta  string
	Note   *string
}

// ReconcileRequest is one dispatch save: a submission identifier, the
// dispatch date and the per-line inputs.
type ReconcileRequest struct {
	OrderID      int64
	SubmissionID uuid.UUID
	DispatchDate time.Time
	Lines        []LineInput
}

// ReconcileResult reports what one save persisted, together with the order
// snapshot re-read after the save.
type ReconcileResult struct {
	Detail         *domain.OrderDetail
	Status         domain.OrderStatus
	StatusChanged  bool
	EventsRecorded int
	LinesUpdated   int
	LogsWritten    int
}

type lineUpdate struct {
	lineID     int64
	dispatched int64
	remarks    *string
}

// Reconcile validates and persists one dispatch submission. Validation is
// all-or-nothing: a single line over its pending quantity rejects the whole
// save before any write. Writes land in a fixed order (events, line updates,
// order status, logs) and the first failing step aborts the rest without
// compensating rollback; a retry with the same submission ID cannot
// double-insert events and surfaces apperr.Conflict instead.
func (s *Service) Reconcile(ctx context.Context, req ReconcileRequest) (*ReconcileResult, error) {
	if req.OrderID <= 0 || req.SubmissionID == uuid.Nil || req.DispatchDate.IsZero() {
		return nil, apperr.Invalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	detail, err := s.store.Get(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperr.NotFound
	}

	inputs := make(map[int64]LineInput, len(req.Lines))
	for _, in := range req.Lines {
		if _, dup := inputs[in.LineID]; dup {
			return nil, fmt.Errorf("duplicate line %d in submission: %w", in.LineID, apperr.Invalid)
		}
		inputs[in.LineID] = in
	}

	var (
		events   []domain.DispatchEvent
		logs     []domain.OrderLog
		updates  []lineUpdate
		progress = make([]domain.LineProgress, 0, len(detail.Lines))
	)
	now := s.now()
	dateLabel := req.DispatchDate.Format(dateLabelLayout)

	for _, ld := range detail.Lines {
		stats := s.statsFor(detail.Order.ID, ld)
		in, hasInput := inputs[ld.Line.ID]
		delete(inputs, ld.Line.ID)

		var delta int64
		if hasInput {
			delta = ParseDelta(in.Delta)
		}
		if delta > stats.Pending {
			s.inc(s.counters.Rejected)
			return nil, &DeltaError{Line: ld.Item.Name, Requested: delta, Pending: stats.Pending}
		}

		newTotal := stats.Dispatched + delta
		progress = append(progress, domain.LineProgress{Ordered: stats.Ordered, Dispatched: newTotal})

		if delta > 0 {
			events = append(events, domain.DispatchEvent{
				OrderLineID:  ld.Line.ID,
				SubmissionID: req.SubmissionID,
				Qty:          delta,
				DispatchedAt: req.DispatchDate,
			})
			logs = append(logs, domain.OrderLog{
				OrderID:   detail.Order.ID,
				Message:   fmt.Sprintf("Dispatched %d pcs of %s on %s.", delta, ld.Item.Name, dateLabel),
				CreatedAt: now,
			})
		}

		noteChanged := false
		newRemarks := ld.Line.Remarks
		if hasInput && in.Note != nil {
			staged := trimToNil(*in.Note)
			if !sameNote(staged, ld.Line.Remarks) {
				noteChanged = true
				newRemarks = staged
			}
		}

		// a clamped stored value differs from the new total, so the line is
		// rewritten even on a zero-delta save to bring storage back in range
		if delta > 0 || noteChanged || stats.Clamped {
			updates = append(updates, lineUpdate{lineID: ld.Line.ID, dispatched: newTotal, remarks: newRemarks})
		}
		if noteChanged && delta == 0 {
			logs = append(logs, domain.OrderLog{
				OrderID: detail.Order.ID,
				Message: fmt.Sprintf("Note for %s changed from %q to %q.",
					ld.Item.Name, derefNote(ld.Line.Remarks), derefNote(newRemarks)),
				CreatedAt: now,
			})
		}
	}
	if len(inputs) > 0 {
		for id := range inputs {
			return nil, fmt.Errorf("unknown order line %d in submission: %w", id, apperr.Invalid)
		}
	}

	prevStatus := detail.Order.Status
	newStatus := domain.NextStatus(prevStatus, domain.AggregateDispatch(progress))
	statusChanged := newStatus != prevStatus
	if statusChanged {
		logs = append(logs, domain.OrderLog{
			OrderID:   detail.Order.ID,
			Message:   fmt.Sprintf("Status changed: %s → %s", prevStatus, newStatus),
			CreatedAt: now,
		})
	}

	// Persist in a fixed order; a failure leaves earlier steps committed.
	if err := s.store.InsertDispatchEvents(ctx, events); err != nil {
		return nil, fmt.Errorf("persist dispatch events: %w", err)
	}
	for _, u := range updates {
		if err := s.store.UpdateLineDispatch(ctx, u.lineID, u.dispatched, u.remarks); err != nil {
			return nil, fmt.Errorf("persist line updates: %w", err)
		}
	}
	if statusChanged {
		if err := s.store.UpdateOrderStatus(ctx, detail.Order.ID, newStatus); err != nil {
			return nil, fmt.Errorf("persist order status: %w", err)
		}
	}
	if err := s.store.InsertLogs(ctx, logs); err != nil {
		return nil, fmt.Errorf("persist order logs: %w", err)
	}

	refreshed, err := s.store.Get(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("refresh order after save: %w", err)
	}

	s.inc(s.counters.Saved)
	s.logger.Info("dispatch reconciled",
		logx.String("event", "dispatch_saved"),
		logx.Int64("order_id", detail.Order.ID),
		logx.String("submission_id", req.SubmissionID.String()),
		logx.Int("events", len(events)),
		logx.Int("lines_updated", len(updates)),
		logx.String("status", string(newStatus)),
		logx.Bool("status_changed", statusChanged),
	)

	return &ReconcileResult{
		Detail:         refreshed,
		Status:         newStatus,
		StatusChanged:  statusChanged,
		EventsRecorded: len(events),
		LinesUpdated:   len(updates),
		LogsWritten:    len(logs),
	}, nil
}

// Summary is the read-side fulfilment view of one order: aggregate totals and
// the shipment batch grouping.
type Summary struct {
	OrderID           int64
	Status            domain.OrderStatus
	TotalOrdered      int64
	TotalDispatched   int64
	FulfilmentPercent float64
	Batches           []Batch
}

// Summary computes the fulfilment aggregates and batch grouping for an order.
func (s *Service) Summary(ctx context.Context, orderID int64) (*Summary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	detail, err := s.store.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperr.NotFound
	}
	events, err := s.store.ListDispatchEvents(ctx, orderID)
	if err != nil {
		return nil, err
	}

	out := &Summary{OrderID: orderID, Status: detail.Order.Status}
	for _, ld := range detail.Lines {
		stats := s.statsFor(orderID, ld)
		out.TotalOrdered += stats.Ordered
		out.TotalDispatched += stats.Dispatched
	}
	out.FulfilmentPercent = domain.FulfilmentPercent(out.TotalOrdered, out.TotalDispatched)
	out.Batches = GroupBatches(detail.Lines, events)
	return out, nil
}

// statsFor computes a line's stats and surfaces the data anomaly when the
// stored value had to be clamped.
func (s *Service) statsFor(orderID int64, ld domain.LineDetail) domain.LineStats {
	stats := domain.ComputeLineStats(ld.Line.Qty, ld.Line.DispatchedQty)
	if stats.Clamped {
		s.inc(s.counters.Clamped)
		s.logger.Warn("stored dispatched quantity out of range",
			logx.Int64("order_id", orderID),
			logx.Int64("line_id", ld.Line.ID),
			logx.Int64("raw", stats.Raw),
			logx.Int64("clamped_to", stats.Dispatched),
		)
	}
	return stats
}

func (s *Service) inc(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}

func trimToNil(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func sameNote(a, b *string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func derefNote(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
