package sqlite_test

import (
	"context"
	"testing"

	"github.com/dmateus/flashdeck/internal/db"
	"github.com/dmateus/flashdeck/internal/repository"
	"github.com/dmateus/flashdeck/internal/repository/sqlite"
	"github.com/dmateus/flashdeck/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type UserRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewUserRepository(s.db)
}

func (s *UserRepositorySuite) TestInsertAndList() {
	ctx := context.Background()

	user, err := s.repo.Insert(ctx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Assert().Greater(user.ID, int64(0))
	s.Assert().Equal("alice", user.Name)
	s.Assert().False(user.CreatedAt.IsZero())

	_, err = s.repo.Insert(ctx, "bob")
	s.Require().NoError(err)

	users, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Assert().Equal("alice", users[0].Name)
	s.Assert().Equal("bob", users[1].Name)
}

func (s *UserRepositorySuite) TestExists() {
	ctx := context.Background()

	user, err := s.repo.Insert(ctx, "alice")
	s.Require().NoError(err)

	exists, err := s.repo.Exists(ctx, user.ID)
	s.Require().NoError(err)
	s.Assert().True(exists)

	exists, err = s.repo.Exists(ctx, user.ID+1000)
	s.Require().NoError(err)
	s.Assert().False(exists)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
