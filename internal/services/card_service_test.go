package services_test

import (
	"context"
	"testing"

	apperrors "github.com/dmateus/flashdeck/internal/errors"
	"github.com/dmateus/flashdeck/internal/models"
	"github.com/dmateus/flashdeck/internal/services"
	"github.com/dmateus/flashdeck/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCardService() (services.CardService, *mocks.MockCardRepository, *mocks.MockDeckRepository) {
	cardRepo := new(mocks.MockCardRepository)
	deckRepo := new(mocks.MockDeckRepository)
	return services.NewCardService(cardRepo, deckRepo), cardRepo, deckRepo
}

func TestCreateCard(t *testing.T) {
	svc, cardRepo, deckRepo := newCardService()

	deckRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	cardRepo.On("Insert", mock.Anything, int64(1), "q", "a").Return(&models.Card{ID: 10, DeckID: 1, Question: "q", Answer: "a"}, nil)

	card, err := svc.CreateCard(context.Background(), 1, "q", "a")
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, int64(10), card.ID)
	cardRepo.AssertExpectations(t)
}

func TestCreateCard_DeckNotFound(t *testing.T) {
	svc, cardRepo, deckRepo := newCardService()

	deckRepo.On("Exists", mock.Anything, int64(1)).Return(false, nil)

	_, err := svc.CreateCard(context.Background(), 1, "q", "a")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)

	cardRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCard_EmptyFields(t *testing.T) {
	svc, cardRepo, deckRepo := newCardService()

	_, err := svc.CreateCard(context.Background(), 1, "", "a")
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)

	_, err = svc.CreateCard(context.Background(), 1, "q", "  ")
	require.Error(t, err)

	deckRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	cardRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateCard_Missing(t *testing.T) {
	svc, cardRepo, _ := newCardService()

	cardRepo.On("Update", mock.Anything, int64(10), "q", "a").Return(nil, nil)

	_, err := svc.UpdateCard(context.Background(), 10, "q", "a")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestDeleteCard_Missing(t *testing.T) {
	svc, cardRepo, _ := newCardService()

	cardRepo.On("Exists", mock.Anything, int64(10)).Return(false, nil)

	err := svc.DeleteCard(context.Background(), 10)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)

	cardRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
