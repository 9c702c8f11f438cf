package party

import (
	"context"

	"toyworks-orders/internal/domain"
)

// partyRepository defines storage operations required by the business layer.
type partyRepository interface {
	Get(ctx context.Context, id int64) (*domain.Party, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Party, error)
	Create(ctx context.Context, p *domain.Party) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialPartyUpdate) (bool, error)
}
