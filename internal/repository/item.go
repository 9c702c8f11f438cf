package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
)

// ItemRepo represents the item catalog repository.
type ItemRepo struct{ db *pgxpool.Pool }

// NewItemRepo creates a new ItemRepo.
func NewItemRepo(db *pgxpool.Pool) *ItemRepo { return &ItemRepo{db: db} }

const itemColumns = `id, name, category, unit, dealer_rate, active`

// Get - returns an item by its ID.
func (r *ItemRepo) Get(ctx context.Context, id int64) (*domain.Item, error) {
	var it domain.Item
	err := r.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id=$1`, id,
	).Scan(&it.ID, &it.Name, &it.Category, &it.Unit, &it.DealerRate, &it.Active)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return &it, nil
}

// GetMany returns the items with the given IDs; missing IDs are simply absent
// from the result.
func (r *ItemRepo) GetMany(ctx context.Context, ids []int64) ([]domain.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Item, 0, len(ids))
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Unit, &it.DealerRate, &it.Active); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// List returns items ordered by id. If limit/offset are nil, returns the full list.
func (r *ItemRepo) List(ctx context.Context, limit, offset *int) ([]domain.Item, error) {
	q := `SELECT ` + itemColumns + ` FROM items ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Item, 0, capacity)
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Unit, &it.DealerRate, &it.Active); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Create - creates a new item.
func (r *ItemRepo) Create(ctx context.Context, it *domain.Item) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO items(name, category, unit, dealer_rate, active) VALUES($1,$2,$3,$4,$5) RETURNING id`,
		it.Name, string(it.Category), it.Unit, it.DealerRate, it.Active).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.Conflict
		}
		return 0, fmt.Errorf("create item: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to an item and returns true if a row was affected.
func (r *ItemRepo) UpdatePartial(ctx context.Context, u domain.PartialItemUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE items
        SET
            name        = COALESCE($2, name),
            category    = COALESCE($3, category),
            unit        = COALESCE($4, unit),
            dealer_rate = COALESCE($5, dealer_rate),
            active      = COALESCE($6, active)
        WHERE id = $1
    `, u.ID, u.Name, categoryArg(u.Category), u.Unit, u.DealerRate, u.Active)
	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.Conflict
		}
		return false, fmt.Errorf("update item %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

func categoryArg(c *domain.ItemCategory) *string {
	if c == nil {
		return nil
	}
	v := string(*c)
	return &v
}
