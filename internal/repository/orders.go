package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
	"toyworks-orders/internal/ports/ordertx"
)

// OrderRepo represents the order repository: orders, their lines, dispatch
// events and audit log entries.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

// WithTx opens a transaction and executes fn within it.
func (r *OrderRepo) WithTx(ctx context.Context, fn func(tx ordertx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				panic(rbErr)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo is the transaction-scoped order write surface.
type TxRepo struct {
	tx pgx.Tx
}

// InsertOrder - inserts an order row and sets its generated ID.
func (r *TxRepo) InsertOrder(ctx context.Context, o *domain.Order) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO orders (code, party_id, order_date, expected_dispatch_date, status, remarks, total_qty, total_value)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `, o.Code, o.PartyID, o.OrderDate, o.ExpectedDispatch, string(o.Status), o.Remarks, o.TotalQty, o.TotalValue).Scan(&o.ID)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflict
		}
		return fmt.Errorf("insert order %q: %w", o.Code, err)
	}
	return nil
}

// InsertLine - inserts an order line row and sets its generated ID.
func (r *TxRepo) InsertLine(ctx context.Context, l *domain.OrderLine) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO order_lines (order_id, item_id, qty, dispatched_qty, rate, line_remarks)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, l.OrderID, l.ItemID, l.Qty, l.DispatchedQty, l.Rate, l.Remarks).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert order line (order %d, item %d): %w", l.OrderID, l.ItemID, err)
	}
	return nil
}

// InsertLog - inserts an order log row.
func (r *TxRepo) InsertLog(ctx context.Context, entry *domain.OrderLog) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO order_logs (order_id, message, created_at)
        VALUES ($1, $2, $3)
        RETURNING id
    `, entry.OrderID, entry.Message, entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert order log (order %d): %w", entry.OrderID, err)
	}
	return nil
}

// Get returns one order with its party and its lines joined to their items.
// Returns nil when the order does not exist.
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	var d domain.OrderDetail
	err := r.db.QueryRow(ctx, `
        SELECT o.id, o.code, o.party_id, o.order_date, o.expected_dispatch_date,
               o.status, o.remarks, o.total_qty, o.total_value,
               p.id, p.name, p.city, p.phone, p.credit_terms, p.active
        FROM orders o
        JOIN parties p ON p.id = o.party_id
        WHERE o.id = $1
    `, id).Scan(
		&d.Order.ID, &d.Order.Code, &d.Order.PartyID, &d.Order.OrderDate, &d.Order.ExpectedDispatch,
		&d.Order.Status, &d.Order.Remarks, &d.Order.TotalQty, &d.Order.TotalValue,
		&d.Party.ID, &d.Party.Name, &d.Party.City, &d.Party.Phone, &d.Party.CreditTerms, &d.Party.Active,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}

	rows, err := r.db.Query(ctx, `
        SELECT l.id, l.order_id, l.item_id, l.qty, l.dispatched_qty, l.rate, l.line_remarks,
               i.id, i.name, i.category, i.unit, i.dealer_rate, i.active
        FROM order_lines l
        JOIN items i ON i.id = l.item_id
        WHERE l.order_id = $1
        ORDER BY l.id
    `, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d lines: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ld domain.LineDetail
		if err := rows.Scan(
			&ld.Line.ID, &ld.Line.OrderID, &ld.Line.ItemID, &ld.Line.Qty,
			&ld.Line.DispatchedQty, &ld.Line.Rate, &ld.Line.Remarks,
			&ld.Item.ID, &ld.Item.Name, &ld.Item.Category, &ld.Item.Unit,
			&ld.Item.DealerRate, &ld.Item.Active,
		); err != nil {
			return nil, fmt.Errorf("scan order %d line: %w", id, err)
		}
		d.Lines = append(d.Lines, ld)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByCode returns the bare order row by its human-readable code.
// Returns nil when the order does not exist.
func (r *OrderRepo) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `
        SELECT id, code, party_id, order_date, expected_dispatch_date, status, remarks, total_qty, total_value
        FROM orders
        WHERE code = $1
    `, code).Scan(
		&o.ID, &o.Code, &o.PartyID, &o.OrderDate, &o.ExpectedDispatch,
		&o.Status, &o.Remarks, &o.TotalQty, &o.TotalValue,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by code %q: %w", code, err)
	}
	return &o, nil
}

// List returns orders ordered by order date descending, newest id first,
// narrowed by the optional filter fields.
func (r *OrderRepo) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	q := `SELECT id, code, party_id, order_date, expected_dispatch_date, status, remarks, total_qty, total_value
        FROM orders`
	args := make([]any, 0, 4)
	where := ""
	appendCond := func(cond string, v any) {
		args = append(args, v)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}
	if f.Status != nil {
		appendCond("status = $%d", string(*f.Status))
	}
	if f.PartyID != nil {
		appendCond("party_id = $%d", *f.PartyID)
	}
	q += where + " ORDER BY order_date DESC, id DESC"
	if f.Limit != nil {
		args = append(args, *f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset != nil {
		args = append(args, *f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	capacity := 0
	if f.Limit != nil && *f.Limit > 0 {
		capacity = *f.Limit
	}
	out := make([]domain.Order, 0, capacity)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.Code, &o.PartyID, &o.OrderDate, &o.ExpectedDispatch,
			&o.Status, &o.Remarks, &o.TotalQty, &o.TotalValue,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// UpdatePartial applies a partial update to an order and returns true if a row was affected.
func (r *OrderRepo) UpdatePartial(ctx context.Context, u domain.PartialOrderUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET
            status                 = COALESCE($2, status),
            remarks                = COALESCE($3, remarks),
            expected_dispatch_date = COALESCE($4, expected_dispatch_date),
            updated_at             = now()
        WHERE id = $1
    `, u.ID, statusArg(u.Status), u.Remarks, u.ExpectedDispatch)
	if err != nil {
		return false, fmt.Errorf("update order %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

func statusArg(s *domain.OrderStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

// UpdateTotals rewrites the denormalized order totals.
func (r *OrderRepo) UpdateTotals(ctx context.Context, orderID, totalQty int64, totalValue decimal.Decimal) error {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET total_qty = $2, total_value = $3, updated_at = now()
        WHERE id = $1
    `, orderID, totalQty, totalValue)
	if err != nil {
		return fmt.Errorf("update order %d totals: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", orderID)
	}
	return nil
}

// InsertLine inserts a line outside a transaction (add-line on an existing order).
func (r *OrderRepo) InsertLine(ctx context.Context, l *domain.OrderLine) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO order_lines (order_id, item_id, qty, dispatched_qty, rate, line_remarks)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, l.OrderID, l.ItemID, l.Qty, l.DispatchedQty, l.Rate, l.Remarks).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert order line (order %d, item %d): %w", l.OrderID, l.ItemID, err)
	}
	return nil
}

// DeleteLine removes one line of an order and returns true if a row was deleted.
func (r *OrderRepo) DeleteLine(ctx context.Context, orderID, lineID int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM order_lines WHERE id = $1 AND order_id = $2`, lineID, orderID)
	if err != nil {
		return false, fmt.Errorf("delete order %d line %d: %w", orderID, lineID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// ListLogs returns the most recent log entries for an order, newest first.
func (r *OrderRepo) ListLogs(ctx context.Context, orderID int64, limit int) ([]domain.OrderLog, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, order_id, message, created_at
        FROM order_logs
        WHERE order_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `, orderID, limit)
	if err != nil {
		return nil, fmt.Errorf("list order %d logs: %w", orderID, err)
	}
	defer rows.Close()

	out := make([]domain.OrderLog, 0, limit)
	for rows.Next() {
		var l domain.OrderLog
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Message, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// InsertLogs batch-inserts order log entries.
func (r *OrderRepo) InsertLogs(ctx context.Context, logs []domain.OrderLog) error {
	if len(logs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, l := range logs {
		batch.Queue(`
            INSERT INTO order_logs (order_id, message, created_at)
            VALUES ($1, $2, $3)
        `, l.OrderID, l.Message, l.CreatedAt)
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for range logs {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert order logs: %w", err)
		}
	}
	return nil
}

// CountOverdue counts open orders past their expected dispatch date.
func (r *OrderRepo) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*)
        FROM orders
        WHERE expected_dispatch_date IS NOT NULL
          AND expected_dispatch_date < $1
          AND status NOT IN ($2, $3)
    `, now, string(domain.StatusDispatched), string(domain.StatusCancelled)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count overdue orders: %w", err)
	}
	return n, nil
}
