package services

import (
	"context"
	"time"

	"github.com/dmateus/flashdeck/internal/errors"
	"github.com/dmateus/flashdeck/internal/logger"
	"github.com/dmateus/flashdeck/internal/models"
	"github.com/dmateus/flashdeck/internal/repository"
	"github.com/dmateus/flashdeck/internal/review"
)

// StreakService handles the review write path: validating the reported
// streak, computing the next review date, and upserting the (user, card) row.
type StreakService interface {
	RecordReview(ctx context.Context, userID, cardID int64, streak int) (*models.Streak, error)
	ResetStreak(ctx context.Context, userID, cardID int64) error
}

type streakService struct {
	streakRepo repository.StreakRepository
	cardRepo   repository.CardRepository
	userRepo   repository.UserRepository
}

// NewStreakService creates a new StreakService
func NewStreakService(streakRepo repository.StreakRepository, cardRepo repository.CardRepository, userRepo repository.UserRepository) StreakService {
	return &streakService{streakRepo: streakRepo, cardRepo: cardRepo, userRepo: userRepo}
}

func (s *streakService) RecordReview(ctx context.Context, userID, cardID int64, streak int) (*models.Streak, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording review: user_id=%d, card_id=%d, streak=%d", userID, cardID, streak)

	// Reject before computing an interval or touching storage.
	if streak < 1 {
		return nil, errors.NewValidationError("streak", "must be at least 1")
	}

	cardExists, err := s.cardRepo.Exists(ctx, cardID)
	if err != nil {
		log.Error("failed to check card existence: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if !cardExists {
		return nil, errors.NewNotFoundError("card", cardID)
	}

	userExists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		log.Error("failed to check user existence: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if !userExists {
		return nil, errors.NewNotFoundError("user", userID)
	}

	nextReview := review.NextDate(time.Now(), streak)
	log.Debug("next review in %d days: %s", review.Interval(streak), nextReview.Format("2006-01-02"))

	record, err := s.streakRepo.Upsert(ctx, userID, cardID, streak, nextReview)
	if err != nil {
		log.Error("failed to upsert streak: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return record, nil
}

func (s *streakService) ResetStreak(ctx context.Context, userID, cardID int64) error {
	log := logger.FromContext(ctx)
	log.Debug("resetting streak: user_id=%d, card_id=%d", userID, cardID)

	cardExists, err := s.cardRepo.Exists(ctx, cardID)
	if err != nil {
		log.Error("failed to check card existence: %v", err)
		return errors.NewInternalError(err)
	}
	if !cardExists {
		return errors.NewNotFoundError("card", cardID)
	}

	userExists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		log.Error("failed to check user existence: %v", err)
		return errors.NewInternalError(err)
	}
	if !userExists {
		return errors.NewNotFoundError("user", userID)
	}

	if err := s.streakRepo.Delete(ctx, userID, cardID); err != nil {
		log.Error("failed to delete streak: %v", err)
		return errors.NewInternalError(err)
	}

	return nil
}
