package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/dmateus/flashdeck/internal/db"
	"github.com/dmateus/flashdeck/internal/repository"
	"github.com/dmateus/flashdeck/internal/repository/sqlite"
	"github.com/dmateus/flashdeck/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type StreakRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.StreakRepository
}

func (s *StreakRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewStreakRepository(s.db)
}

func (s *StreakRepositorySuite) setupUserAndCard() (int64, int64) {
	ctx := context.Background()

	var userID int64
	err := s.db.QueryRowContext(ctx, `INSERT INTO users (name) VALUES (?) RETURNING id`, "alice").Scan(&userID)
	s.Require().NoError(err)

	var deckID int64
	err = s.db.QueryRowContext(ctx, `INSERT INTO decks (name) VALUES (?) RETURNING id`, "go basics").Scan(&deckID)
	s.Require().NoError(err)

	var cardID int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO cards (deck_id, question, answer) VALUES (?, ?, ?) RETURNING id
	`, deckID, "what does iota do?", "successive untyped constants").Scan(&cardID)
	s.Require().NoError(err)

	return userID, cardID
}

func (s *StreakRepositorySuite) TestUpsert_Insert() {
	ctx := context.Background()
	userID, cardID := s.setupUserAndCard()

	next := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	streak, err := s.repo.Upsert(ctx, userID, cardID, 3, next)
	s.Require().NoError(err)
	s.Require().NotNil(streak)
	s.Assert().Equal(userID, streak.UserID)
	s.Assert().Equal(cardID, streak.CardID)
	s.Assert().Equal(3, streak.Streak)
	s.Assert().Equal("2024-01-13", streak.NextReviewDate.Format("2006-01-02"))
}

func (s *StreakRepositorySuite) TestUpsert_SecondWriteOverwrites() {
	ctx := context.Background()
	userID, cardID := s.setupUserAndCard()

	first, err := s.repo.Upsert(ctx, userID, cardID, 1, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	second, err := s.repo.Upsert(ctx, userID, cardID, 2, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	// Same row, updated in place: never a duplicate for the pair.
	s.Assert().Equal(first.ID, second.ID)
	s.Assert().Equal(2, second.Streak)
	s.Assert().Equal("2024-01-12", second.NextReviewDate.Format("2006-01-02"))

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM streaks WHERE user_id = ? AND card_id = ?`, userID, cardID).Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func (s *StreakRepositorySuite) TestUpsert_DistinctUsersKeepDistinctRows() {
	ctx := context.Background()
	userID, cardID := s.setupUserAndCard()

	var otherUserID int64
	err := s.db.QueryRowContext(ctx, `INSERT INTO users (name) VALUES (?) RETURNING id`, "bob").Scan(&otherUserID)
	s.Require().NoError(err)

	_, err = s.repo.Upsert(ctx, userID, cardID, 3, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	_, err = s.repo.Upsert(ctx, otherUserID, cardID, 1, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM streaks WHERE card_id = ?`, cardID).Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(2, count)
}

func (s *StreakRepositorySuite) TestUpsert_RejectsStreakBelowOne() {
	ctx := context.Background()
	userID, cardID := s.setupUserAndCard()

	// The CHECK constraint holds even if a caller skips service validation.
	_, err := s.repo.Upsert(ctx, userID, cardID, 0, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	s.Assert().Error(err)
}

func (s *StreakRepositorySuite) TestGet() {
	ctx := context.Background()
	userID, cardID := s.setupUserAndCard()

	missing, err := s.repo.Get(ctx, userID, cardID)
	s.Require().NoError(err)
	s.Assert().Nil(missing)

	_, err = s.repo.Upsert(ctx, userID, cardID, 5, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	streak, err := s.repo.Get(ctx, userID, cardID)
	s.Require().NoError(err)
	s.Require().NotNil(streak)
	s.Assert().Equal(5, streak.Streak)
}

func (s *StreakRepositorySuite) TestDelete() {
	ctx := context.Background()
	userID, cardID := s.setupUserAndCard()

	_, err := s.repo.Upsert(ctx, userID, cardID, 2, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	err = s.repo.Delete(ctx, userID, cardID)
	s.Require().NoError(err)

	streak, err := s.repo.Get(ctx, userID, cardID)
	s.Require().NoError(err)
	s.Assert().Nil(streak)
}

func TestStreakRepositorySuite(t *testing.T) {
	suite.Run(t, new(StreakRepositorySuite))
}
