package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
)

// ListDispatchEvents returns all dispatch events for an order, oldest first.
func (r *OrderRepo) ListDispatchEvents(ctx context.Context, orderID int64) ([]domain.DispatchEvent, error) {
	rows, err := r.db.Query(ctx, `
        SELECT e.id, e.order_line_id, e.submission_id, e.qty, e.dispatched_at
        FROM dispatch_events e
        JOIN order_lines l ON l.id = e.order_line_id
        WHERE l.order_id = $1
        ORDER BY e.dispatched_at ASC, e.id ASC
    `, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order %d dispatch events: %w", orderID, err)
	}
	defer rows.Close()

	var out []domain.DispatchEvent
	for rows.Next() {
		var e domain.DispatchEvent
		if err := rows.Scan(&e.ID, &e.OrderLineID, &e.SubmissionID, &e.Qty, &e.DispatchedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// InsertDispatchEvents batch-inserts dispatch events. A duplicate
// (submission_id, order_line_id) pair means the same save already landed and
// maps to apperr.Conflict.
func (r *OrderRepo) InsertDispatchEvents(ctx context.Context, events []domain.DispatchEvent) error {
	if len(events) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, e := range events {
		batch.Queue(`
            INSERT INTO dispatch_events (order_line_id, submission_id, qty, dispatched_at)
            VALUES ($1, $2, $3, $4)
        `, e.OrderLineID, e.SubmissionID, e.Qty, e.DispatchedAt)
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for range events {
		if _, err := br.Exec(); err != nil {
			if IsDuplicate(err) {
				return apperr.Conflict
			}
			return fmt.Errorf("insert dispatch events: %w", err)
		}
	}
	return nil
}

// UpdateLineDispatch rewrites one line's cumulative dispatched quantity and remark.
func (r *OrderRepo) UpdateLineDispatch(ctx context.Context, lineID, dispatchedQty int64, remarks *string) error {
	ct, err := r.db.Exec(ctx, `
        UPDATE order_lines
        SET dispatched_qty = $2, line_remarks = $3
        WHERE id = $1
    `, lineID, dispatchedQty, remarks)
	if err != nil {
		return fmt.Errorf("update line %d dispatch: %w", lineID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order line %d not found", lineID)
	}
	return nil
}

// UpdateOrderStatus rewrites the order status.
func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, orderID, string(status))
	if err != nil {
		return fmt.Errorf("update order %d status: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", orderID)
	}
	return nil
}
