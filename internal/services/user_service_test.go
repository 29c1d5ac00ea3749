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

func TestCreateUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	svc := services.NewUserService(userRepo)

	userRepo.On("Insert", mock.Anything, "alice").Return(&models.User{ID: 1, Name: "alice"}, nil)

	user, err := svc.CreateUser(context.Background(), "  alice  ")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	userRepo.AssertExpectations(t)
}

func TestCreateUser_EmptyName(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	svc := services.NewUserService(userRepo)

	_, err := svc.CreateUser(context.Background(), "   ")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)

	userRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
