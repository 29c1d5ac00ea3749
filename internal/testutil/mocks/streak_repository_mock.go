package mocks

import (
	"context"
	"time"

	"github.com/dmateus/flashdeck/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockStreakRepository is a mock implementation of repository.StreakRepository
type MockStreakRepository struct {
	mock.Mock
}

func (m *MockStreakRepository) Upsert(ctx context.Context, userID, cardID int64, count int, nextReview time.Time) (*models.Streak, error) {
	args := m.Called(ctx, userID, cardID, count, nextReview)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Streak), args.Error(1)
}

func (m *MockStreakRepository) Get(ctx context.Context, userID, cardID int64) (*models.Streak, error) {
	args := m.Called(ctx, userID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Streak), args.Error(1)
}

func (m *MockStreakRepository) Delete(ctx context.Context, userID, cardID int64) error {
	args := m.Called(ctx, userID, cardID)
	return args.Error(0)
}
