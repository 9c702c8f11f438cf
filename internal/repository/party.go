package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
)

// PartyRepo represents the dealer party repository.
type PartyRepo struct{ db *pgxpool.Pool }

// NewPartyRepo creates a new PartyRepo.
func NewPartyRepo(db *pgxpool.Pool) *PartyRepo { return &PartyRepo{db: db} }

const partyColumns = `id, name, city, phone, credit_terms, active`

// Get - returns a party by its ID.
func (r *PartyRepo) Get(ctx context.Context, id int64) (*domain.Party, error) {
	var p domain.Party
	err := r.db.QueryRow(ctx,
		`SELECT `+partyColumns+` FROM parties WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.City, &p.Phone, &p.CreditTerms, &p.Active)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party %d: %w", id, err)
	}
	return &p, nil
}

// List returns parties ordered by id. If limit/offset are nil, returns the full list.
func (r *PartyRepo) List(ctx context.Context, limit, offset *int) ([]domain.Party, error) {
	q := `SELECT ` + partyColumns + ` FROM parties ORDER BY id`
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
	out := make([]domain.Party, 0, capacity)
	for rows.Next() {
		var p domain.Party
		if err := rows.Scan(&p.ID, &p.Name, &p.City, &p.Phone, &p.CreditTerms, &p.Active); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create - creates a new party.
func (r *PartyRepo) Create(ctx context.Context, p *domain.Party) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO parties(name, city, phone, credit_terms, active) VALUES($1,$2,$3,$4,$5) RETURNING id`,
		p.Name, p.City, p.Phone, p.CreditTerms, p.Active).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.Conflict
		}
		return 0, fmt.Errorf("create party: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to a party and returns true if a row was affected.
func (r *PartyRepo) UpdatePartial(ctx context.Context, u domain.PartialPartyUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE parties
        SET
            name         = COALESCE($2, name),
            city         = COALESCE($3, city),
            phone        = COALESCE($4, phone),
            credit_terms = COALESCE($5, credit_terms),
            active       = COALESCE($6, active)
        WHERE id = $1
    `, u.ID, u.Name, u.City, u.Phone, u.CreditTerms, u.Active)
	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.Conflict
		}
		return false, fmt.Errorf("update party %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}
