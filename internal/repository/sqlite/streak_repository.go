package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmateus/flashdeck/internal/db"
	"github.com/dmateus/flashdeck/internal/logger"
	"github.com/dmateus/flashdeck/internal/models"
	"github.com/dmateus/flashdeck/internal/repository"
)

type streakRepository struct {
	db *db.DB
}

// NewStreakRepository creates a new StreakRepository implementation
func NewStreakRepository(db *db.DB) repository.StreakRepository {
	return &streakRepository{db: db}
}

// Upsert writes the streak count and next review date for a (user, card) pair
// in one statement. The UNIQUE(user_id, card_id) constraint guarantees a
// single row per pair and keeps both fields changing together.
func (r *streakRepository) Upsert(ctx context.Context, userID, cardID int64, count int, nextReview time.Time) (*models.Streak, error) {
	log := logger.FromContext(ctx).WithPrefix("streak_repo")
	log.Debug("upserting streak: user_id=%d, card_id=%d, streak=%d", userID, cardID, count)

	var s models.Streak
	err := r.db.QueryRowContext(ctx, `
INSERT INTO streaks (user_id, card_id, streak, next_review_date)
VALUES (?, ?, ?, ?)
ON CONFLICT (user_id, card_id) DO UPDATE SET
    streak = excluded.streak,
    next_review_date = excluded.next_review_date
RETURNING id, user_id, card_id, streak, next_review_date
`, userID, cardID, count, nextReview.Format(dateLayout)).Scan(&s.ID, &s.UserID, &s.CardID, &s.Streak, &s.NextReviewDate)
	if err != nil {
		log.Error("failed to upsert streak: %v", err)
		return nil, err
	}
	log.Debug("streak upserted: id=%d, next_review=%s", s.ID, s.NextReviewDate.Format(dateLayout))
	return &s, nil
}

func (r *streakRepository) Get(ctx context.Context, userID, cardID int64) (*models.Streak, error) {
	log := logger.FromContext(ctx).WithPrefix("streak_repo")
	log.Debug("getting streak: user_id=%d, card_id=%d", userID, cardID)

	var s models.Streak
	err := r.db.QueryRowContext(ctx, `
SELECT id, user_id, card_id, streak, next_review_date
FROM streaks
WHERE user_id = ? AND card_id = ?
`, userID, cardID).Scan(&s.ID, &s.UserID, &s.CardID, &s.Streak, &s.NextReviewDate)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("streak not found: user_id=%d, card_id=%d", userID, cardID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get streak: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *streakRepository) Delete(ctx context.Context, userID, cardID int64) error {
	log := logger.FromContext(ctx).WithPrefix("streak_repo")
	log.Debug("deleting streak: user_id=%d, card_id=%d", userID, cardID)

	_, err := r.db.ExecContext(ctx, `DELETE FROM streaks WHERE user_id = ? AND card_id = ?`, userID, cardID)
	if err != nil {
		log.Error("failed to delete streak: %v", err)
	}
	return err
}
