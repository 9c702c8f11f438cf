package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
	"toyworks-orders/internal/logx"
	"toyworks-orders/internal/ports/ordertx"
)

const defaultLogLimit = 50

// Service coordinates order business logic: punching new orders, line
// management, manual status changes and the audit trail.
type Service struct {
	repo             orderRepository
	items            itemStore
	parties          partyStore
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures an order Service.
func NewService(repo orderRepository, items itemStore, parties partyStore, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		items:            items,
		parties:          parties,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// PunchLine is one requested line of a new order. A nil Rate snapshots the
// item's current dealer rate.
type PunchLine struct {
	ItemID int64
	Qty    int64
	Rate   *decimal.Decimal
	Note   *string
}

// PunchRequest describes a new order to punch. An empty Code gets generated;
// a zero OrderDate defaults to today.
type PunchRequest struct {
	PartyID          int64
	Code             string
	OrderDate        time.Time
	ExpectedDispatch *time.Time
	Remarks          string
	Lines            []PunchLine
}

func validatePunch(req *PunchRequest) error {
	if req.PartyID <= 0 {
		return fmt.Errorf("party is required: %w", apperr.Invalid)
	}
	if len(req.Lines) == 0 {
		return fmt.Errorf("at least one line is required: %w", apperr.Invalid)
	}
	for _, l := range req.Lines {
		if l.ItemID <= 0 {
			return fmt.Errorf("line item is required: %w", apperr.Invalid)
		}
		if l.Qty <= 0 {
			return fmt.Errorf("line quantity must be positive: %w", apperr.Invalid)
		}
		if l.Rate != nil && l.Rate.IsNegative() {
			return fmt.Errorf("line rate must not be negative: %w", apperr.Invalid)
		}
	}
	return nil
}

// Punch creates a new order with its lines and the opening log entry in one
// transaction and returns the created order detail. Line rates are
// snapshotted at punch time.
func (s *Service) Punch(ctx context.Context, req PunchRequest) (*domain.OrderDetail, error) {
	if err := validatePunch(&req); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	party, err := s.parties.Get(ctx, req.PartyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, fmt.Errorf("unknown party %d: %w", req.PartyID, apperr.Invalid)
	}

	byID, err := s.resolveItems(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	now := s.now()
	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}
	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = fmt.Sprintf("ORD-%s", now.Format("060102150405"))
	}

	order := domain.Order{
		Code:             code,
		PartyID:          req.PartyID,
		OrderDate:        orderDate,
		ExpectedDispatch: req.ExpectedDispatch,
		Status:           domain.StatusPending,
		Remarks:          strings.TrimSpace(req.Remarks),
	}

	lines := make([]domain.OrderLine, 0, len(req.Lines))
	for _, in := range req.Lines {
		item := byID[in.ItemID]
		rate := item.DealerRate
		if in.Rate != nil {
			rate = *in.Rate
		}
		lines = append(lines, domain.OrderLine{
			ItemID:  in.ItemID,
			Qty:     in.Qty,
			Rate:    rate,
			Remarks: in.Note,
		})
	}
	order.TotalQty, order.TotalValue = computeTotals(lines)

	err = s.repo.WithTx(ctx, func(tx ordertx.Repository) error {
		if err := tx.InsertOrder(ctx, &order); err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := tx.InsertLine(ctx, &lines[i]); err != nil {
				return err
			}
		}
		return tx.InsertLog(ctx, &domain.OrderLog{
			OrderID:   order.ID,
			Message:   fmt.Sprintf("Order punched: %d lines, %d pcs.", len(lines), order.TotalQty),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order punched",
		logx.String("event", "order_punched"),
		logx.Int64("order_id", order.ID),
		logx.String("code", order.Code),
		logx.Int64("party_id", order.PartyID),
		logx.Int("lines", len(lines)),
	)
	return s.Get(ctx, order.ID)
}

// resolveItems loads the catalog items the lines reference and rejects
// unknown or inactive ones.
func (s *Service) resolveItems(ctx context.Context, lines []PunchLine) (map[int64]domain.Item, error) {
	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ItemID]; ok {
			continue
		}
		seen[l.ItemID] = struct{}{}
		ids = append(ids, l.ItemID)
	}

	items, err := s.items.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown item %d: %w", id, apperr.Invalid)
		}
		if !it.Active {
			return nil, fmt.Errorf("item %d is inactive: %w", id, apperr.Invalid)
		}
	}
	return byID, nil
}

func computeTotals(lines []domain.OrderLine) (int64, decimal.Decimal) {
	var qty int64
	value := decimal.Zero
	for _, l := range lines {
		qty += l.Qty
		value = value.Add(l.Rate.Mul(decimal.NewFromInt(l.Qty)))
	}
	return qty, value
}

// Get retrieves one order with its party and lines.
func (s *Service) Get(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound
	}
	return d, nil
}

// List returns orders matching the filter, newest first.
func (s *Service) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, apperr.Invalid
	}
	if f.Limit != nil && *f.Limit < 0 {
		return nil, apperr.Invalid
	}
	if f.Offset != nil && *f.Offset < 0 {
		return nil, apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, f)
}

func validateUpdate(u *domain.PartialOrderUpdate) error {
	if u.ID <= 0 {
		return apperr.Invalid
	}
	if u.Status == nil && u.Remarks == nil && u.ExpectedDispatch == nil {
		return apperr.Invalid
	}
	if u.Status != nil && !u.Status.Valid() {
		return apperr.Invalid
	}
	return nil
}

// UpdatePartial applies a partial update to an order. Status and remarks
// changes are recorded in the order's log. Returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialOrderUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		prevStatus  domain.OrderStatus
		prevRemarks string
	)
	if u.Status != nil || u.Remarks != nil {
		d, err := s.repo.Get(ctx, u.ID)
		if err != nil {
			return false, err
		}
		if d == nil {
			return false, apperr.NotFound
		}
		prevStatus = d.Order.Status
		prevRemarks = d.Order.Remarks
	}

	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.NotFound
	}

	var logs []domain.OrderLog
	if u.Status != nil && *u.Status != prevStatus {
		logs = append(logs, domain.OrderLog{
			OrderID:   u.ID,
			Message:   fmt.Sprintf("Status changed: %s → %s", prevStatus, *u.Status),
			CreatedAt: s.now(),
		})
	}
	if u.Remarks != nil && *u.Remarks != prevRemarks {
		logs = append(logs, domain.OrderLog{
			OrderID:   u.ID,
			Message:   fmt.Sprintf("Remarks changed from %q to %q.", prevRemarks, *u.Remarks),
			CreatedAt: s.now(),
		})
	}
	if len(logs) > 0 {
		if err := s.repo.InsertLogs(ctx, logs); err != nil {
			return true, err
		}
	}
	return true, nil
}

// SetStatusByCode moves an order to the given status, looked up by its code.
// Used for externally driven status overrides. A no-op when the order is
// already in that status.
func (s *Service) SetStatusByCode(ctx context.Context, code string, status domain.OrderStatus) error {
	if strings.TrimSpace(code) == "" || !status.Valid() {
		return apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if o == nil {
		return apperr.NotFound
	}
	if o.Status == status {
		return nil
	}
	if err := s.repo.UpdateOrderStatus(ctx, o.ID, status); err != nil {
		return err
	}
	return s.logStatusChange(ctx, o.ID, o.Status, status)
}

func (s *Service) logStatusChange(ctx context.Context, orderID int64, prev, next domain.OrderStatus) error {
	return s.repo.InsertLogs(ctx, []domain.OrderLog{{
		OrderID:   orderID,
		Message:   fmt.Sprintf("Status changed: %s → %s", prev, next),
		CreatedAt: s.now(),
	}})
}

// AddLine appends a line to an existing order, recomputes the denormalized
// totals and returns the refreshed order detail.
func (s *Service) AddLine(ctx context.Context, orderID int64, in PunchLine) (*domain.OrderDetail, error) {
	if orderID <= 0 || in.ItemID <= 0 || in.Qty <= 0 {
		return nil, apperr.Invalid
	}
	if in.Rate != nil && in.Rate.IsNegative() {
		return nil, apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound
	}

	byID, err := s.resolveItems(ctx, []PunchLine{in})
	if err != nil {
		return nil, err
	}
	item := byID[in.ItemID]
	rate := item.DealerRate
	if in.Rate != nil {
		rate = *in.Rate
	}

	line := domain.OrderLine{OrderID: orderID, ItemID: in.ItemID, Qty: in.Qty, Rate: rate, Remarks: in.Note}
	if err := s.repo.InsertLine(ctx, &line); err != nil {
		return nil, err
	}

	all := make([]domain.OrderLine, 0, len(d.Lines)+1)
	for _, ld := range d.Lines {
		all = append(all, ld.Line)
	}
	all = append(all, line)
	if err := s.applyTotals(ctx, orderID, all); err != nil {
		return nil, err
	}

	err = s.repo.InsertLogs(ctx, []domain.OrderLog{{
		OrderID:   orderID,
		Message:   fmt.Sprintf("Added %d pcs of %s.", in.Qty, item.Name),
		CreatedAt: s.now(),
	}})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, orderID)
}

// RemoveLine deletes a line from an order. Lines with dispatched pieces
// cannot be removed.
func (s *Service) RemoveLine(ctx context.Context, orderID, lineID int64) (*domain.OrderDetail, error) {
	if orderID <= 0 || lineID <= 0 {
		return nil, apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound
	}

	var target *domain.LineDetail
	for i := range d.Lines {
		if d.Lines[i].Line.ID == lineID {
			target = &d.Lines[i]
			break
		}
	}
	if target == nil {
		return nil, apperr.NotFound
	}
	stats := domain.ComputeLineStats(target.Line.Qty, target.Line.DispatchedQty)
	if stats.Dispatched > 0 {
		return nil, fmt.Errorf("line %d has dispatched pieces: %w", lineID, apperr.Conflict)
	}

	ok, err := s.repo.DeleteLine(ctx, orderID, lineID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound
	}

	rest := make([]domain.OrderLine, 0, len(d.Lines)-1)
	for _, ld := range d.Lines {
		if ld.Line.ID != lineID {
			rest = append(rest, ld.Line)
		}
	}
	if err := s.applyTotals(ctx, orderID, rest); err != nil {
		return nil, err
	}

	err = s.repo.InsertLogs(ctx, []domain.OrderLog{{
		OrderID:   orderID,
		Message:   fmt.Sprintf("Removed line of %s (%d pcs).", target.Item.Name, target.Line.Qty),
		CreatedAt: s.now(),
	}})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, orderID)
}

func (s *Service) applyTotals(ctx context.Context, orderID int64, lines []domain.OrderLine) error {
	qty, value := computeTotals(lines)
	return s.repo.UpdateTotals(ctx, orderID, qty, value)
}

// Logs returns the most recent audit entries for an order, newest first.
func (s *Service) Logs(ctx context.Context, orderID int64, limit int) ([]domain.OrderLog, error) {
	if orderID <= 0 {
		return nil, apperr.Invalid
	}
	if limit <= 0 {
		limit = defaultLogLimit
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListLogs(ctx, orderID, limit)
}

// Events returns all dispatch events recorded against an order, oldest first.
func (s *Service) Events(ctx context.Context, orderID int64) ([]domain.DispatchEvent, error) {
	if orderID <= 0 {
		return nil, apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListDispatchEvents(ctx, orderID)
}

// CountOverdue counts open orders past their expected dispatch date.
func (s *Service) CountOverdue(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.CountOverdue(ctx, s.now())
}
