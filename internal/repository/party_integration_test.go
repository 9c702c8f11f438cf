//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
	"toyworks-orders/internal/repository"
)

type PartyRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.PartyRepo
}

func (s *PartyRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewPartyRepo(tcPool)
}

func (s *PartyRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE parties RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *PartyRepositorySuite) TestCreateAndGet() {
	ctx := context.Background()

	in := &domain.Party{
		Name:        "Sharma Toys",
		City:        "Jaipur",
		Phone:       "+911412345678",
		CreditTerms: "net 30",
		Active:      true,
	}

	id, err := s.repo.Create(ctx, in)
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal(id, got.ID)
	s.Equal(in.Name, got.Name)
	s.Equal(in.City, got.City)
	s.Equal(in.Phone, got.Phone)
	s.Equal(in.CreditTerms, got.CreditTerms)
	s.True(got.Active)
}

func (s *PartyRepositorySuite) TestCreate_DuplicateName() {
	ctx := context.Background()

	in1 := &domain.Party{Name: "Sharma Toys", City: "Jaipur", Active: true}
	in2 := &domain.Party{Name: "Sharma Toys", City: "Delhi", Active: true}

	_, err := s.repo.Create(ctx, in1)
	s.Require().NoError(err)

	_, err2 := s.repo.Create(ctx, in2)
	s.ErrorIs(err2, apperr.Conflict, "expected conflict for duplicate name")
}

func (s *PartyRepositorySuite) TestGetNotFound() {
	ctx := context.Background()

	got, err := s.repo.Get(ctx, 9999)
	s.Require().NoError(err)
	s.Require().Nil(got)
}

func (s *PartyRepositorySuite) TestListWithLimitOffset() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.repo.Create(ctx, &domain.Party{
			Name:   fmt.Sprintf("Dealer %d", i+1),
			City:   "Mumbai",
			Active: true,
		})
		s.Require().NoError(err)
	}

	limit := 2
	offset := 1

	list, err := s.repo.List(ctx, &limit, &offset)
	s.Require().NoError(err)

	s.Len(list, 2)
	s.True(list[0].ID < list[1].ID)
}

func (s *PartyRepositorySuite) TestUpdatePartial() {
	ctx := context.Background()

	id, err := s.repo.Create(ctx, &domain.Party{
		Name:   "Old Name",
		City:   "Jaipur",
		Active: true,
	})
	s.Require().NoError(err)

	newName := "New Name"
	inactive := false
	update := domain.PartialPartyUpdate{
		ID:     id,
		Name:   &newName,
		Active: &inactive,
	}

	ok, err := s.repo.UpdatePartial(ctx, update)
	s.Require().NoError(err)
	s.True(ok)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)

	s.Equal(newName, got.Name)
	s.Equal("Jaipur", got.City)
	s.False(got.Active)
}

func (s *PartyRepositorySuite) TestUpdatePartial_DuplicateName() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, &domain.Party{Name: "Dealer A", City: "Jaipur", Active: true})
	s.Require().NoError(err)

	id2, err := s.repo.Create(ctx, &domain.Party{Name: "Dealer B", City: "Delhi", Active: true})
	s.Require().NoError(err)

	takenName := "Dealer A"
	update := domain.PartialPartyUpdate{ID: id2, Name: &takenName}

	ok, err := s.repo.UpdatePartial(ctx, update)
	s.False(ok, "row must not be marked as updated on duplicate")
	s.ErrorIs(err, apperr.Conflict, "expected apperr.Conflict on duplicate name")
}

func (s *PartyRepositorySuite) TestGet_ContextCanceled_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := s.repo.Get(ctx, 1)
	s.Nil(got)
	s.Error(err)
}

func TestPartyRepositorySuite(t *testing.T) {
	suite.Run(t, new(PartyRepositorySuite))
}
