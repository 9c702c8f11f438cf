//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
	"toyworks-orders/internal/repository"
)

type ItemRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.ItemRepo
}

func (s *ItemRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewItemRepo(tcPool)
}

func (s *ItemRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE items RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *ItemRepositorySuite) TestCreateAndGet() {
	ctx := context.Background()

	in := &domain.Item{
		Name:       "Mini Jeep",
		Category:   domain.CategoryJeep,
		Unit:       "pcs",
		DealerRate: decimal.RequireFromString("150.50"),
		Active:     true,
	}

	id, err := s.repo.Create(ctx, in)
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal(id, got.ID)
	s.Equal(in.Name, got.Name)
	s.Equal(in.Category, got.Category)
	s.Equal(in.Unit, got.Unit)
	s.True(in.DealerRate.Equal(got.DealerRate))
	s.True(got.Active)
}

func (s *ItemRepositorySuite) TestCreate_DuplicateName() {
	ctx := context.Background()

	in := &domain.Item{Name: "Mini Jeep", Category: domain.CategoryJeep, Unit: "pcs", Active: true}

	_, err := s.repo.Create(ctx, in)
	s.Require().NoError(err)

	_, err2 := s.repo.Create(ctx, in)
	s.ErrorIs(err2, apperr.Conflict, "expected conflict for duplicate name")
}

func (s *ItemRepositorySuite) TestGetMany_SkipsMissingIDs() {
	ctx := context.Background()

	id1, err := s.repo.Create(ctx, &domain.Item{Name: "Mini Jeep", Category: domain.CategoryJeep, Unit: "pcs", Active: true})
	s.Require().NoError(err)
	id2, err := s.repo.Create(ctx, &domain.Item{Name: "Hero Bike", Category: domain.CategoryBike, Unit: "pcs", Active: true})
	s.Require().NoError(err)

	got, err := s.repo.GetMany(ctx, []int64{id1, id2, 9999})
	s.Require().NoError(err)

	s.Len(got, 2)
	s.Equal(id1, got[0].ID)
	s.Equal(id2, got[1].ID)
}

func (s *ItemRepositorySuite) TestUpdatePartial() {
	ctx := context.Background()

	id, err := s.repo.Create(ctx, &domain.Item{
		Name:       "Mini Jeep",
		Category:   domain.CategoryJeep,
		Unit:       "pcs",
		DealerRate: decimal.RequireFromString("150.50"),
		Active:     true,
	})
	s.Require().NoError(err)

	newRate := decimal.RequireFromString("175.00")
	category := domain.CategoryCar
	update := domain.PartialItemUpdate{
		ID:         id,
		Category:   &category,
		DealerRate: &newRate,
	}

	ok, err := s.repo.UpdatePartial(ctx, update)
	s.Require().NoError(err)
	s.True(ok)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)

	s.Equal("Mini Jeep", got.Name)
	s.Equal(domain.CategoryCar, got.Category)
	s.True(newRate.Equal(got.DealerRate))
}

func (s *ItemRepositorySuite) TestList_ReturnsAll() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, &domain.Item{Name: "Mini Jeep", Category: domain.CategoryJeep, Unit: "pcs", Active: true})
	s.Require().NoError(err)
	_, err = s.repo.Create(ctx, &domain.Item{Name: "Hero Bike", Category: domain.CategoryBike, Unit: "pcs", Active: true})
	s.Require().NoError(err)

	list, err := s.repo.List(ctx, nil, nil)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func TestItemRepositorySuite(t *testing.T) {
	suite.Run(t, new(ItemRepositorySuite))
}
