package party

import (
	"context"
	"strings"
	"time"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
)

// Service coordinates party (dealer) business logic and orchestrates
// repository calls.
type Service struct {
	repo             partyRepository
	operationTimeout time.Duration
}

// NewService creates and configures a party Service.
func NewService(r partyRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates a party for creation.
func validateCreate(p *domain.Party) error {
	if p == nil {
		return apperr.Invalid
	}
	if strings.TrimSpace(p.Name) == "" {
		return apperr.Invalid
	}
	if strings.TrimSpace(p.City) == "" {
		return apperr.Invalid
	}
	if p.Phone != "" && !domain.ValidatePhone(p.Phone) {
		return apperr.Invalid
	}
	return nil
}

func validateUpdate(u *domain.PartialPartyUpdate) error {
	if u.ID <= 0 {
		return apperr.Invalid
	}
	if u.Name == nil && u.City == nil && u.Phone == nil && u.CreditTerms == nil && u.Active == nil {
		return apperr.Invalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.Invalid
	}
	if u.City != nil && strings.TrimSpace(*u.City) == "" {
		return apperr.Invalid
	}
	if u.Phone != nil && *u.Phone != "" && !domain.ValidatePhone(*u.Phone) {
		return apperr.Invalid
	}
	return nil
}

// Get retrieves a party by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Party, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound
	}
	return p, nil
}

// List returns parties with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Party, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Create persists a new party and returns its generated ID.
func (s *Service) Create(ctx context.Context, p *domain.Party) (int64, error) {
	if err := validateCreate(p); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, p)
}

// UpdatePartial applies a partial update to a party. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialPartyUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.NotFound
	}
	return true, nil
}
