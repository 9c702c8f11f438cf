package item

import (
	"context"
	"strings"
	"time"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
)

// Service coordinates catalog item business logic and orchestrates
// repository calls.
type Service struct {
	repo             itemRepository
	operationTimeout time.Duration
}

// NewService creates and configures an item Service.
func NewService(r itemRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates an item for creation.
func validateCreate(it *domain.Item) error {
	if it == nil {
		return apperr.Invalid
	}
	if strings.TrimSpace(it.Name) == "" {
		return apperr.Invalid
	}
	if !it.Category.Valid() {
		return apperr.Invalid
	}
	if strings.TrimSpace(it.Unit) == "" {
		it.Unit = "pcs"
	}
	if it.DealerRate.IsNegative() {
		return apperr.Invalid
	}
	return nil
}

func validateUpdate(u *domain.PartialItemUpdate) error {
	if u.ID <= 0 {
		return apperr.Invalid
	}
	if u.Name == nil && u.Category == nil && u.Unit == nil && u.DealerRate == nil && u.Active == nil {
		return apperr.Invalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.Invalid
	}
	if u.Category != nil && !u.Category.Valid() {
		return apperr.Invalid
	}
	if u.Unit != nil && strings.TrimSpace(*u.Unit) == "" {
		return apperr.Invalid
	}
	if u.DealerRate != nil && u.DealerRate.IsNegative() {
		return apperr.Invalid
	}
	return nil
}

// Get retrieves an item by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Item, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, apperr.NotFound
	}
	return it, nil
}

// List returns items with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Item, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Create persists a new item and returns its generated ID.
func (s *Service) Create(ctx context.Context, it *domain.Item) (int64, error) {
	if err := validateCreate(it); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, it)
}

// UpdatePartial applies a partial update to an item. It returns true if a row was updated.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialItemUpdate) (bool, error) {
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
