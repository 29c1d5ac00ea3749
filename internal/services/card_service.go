package services

import (
	"context"
	"strings"

	"github.com/dmateus/flashdeck/internal/errors"
	"github.com/dmateus/flashdeck/internal/logger"
	"github.com/dmateus/flashdeck/internal/models"
	"github.com/dmateus/flashdeck/internal/repository"
)

// CardService handles card-related business logic
type CardService interface {
	CreateCard(ctx context.Context, deckID int64, question, answer string) (*models.Card, error)
	UpdateCard(ctx context.Context, id int64, question, answer string) (*models.Card, error)
	DeleteCard(ctx context.Context, id int64) error
}

type cardService struct {
	cardRepo repository.CardRepository
	deckRepo repository.DeckRepository
}

// NewCardService creates a new CardService
func NewCardService(cardRepo repository.CardRepository, deckRepo repository.DeckRepository) CardService {
	return &cardService{cardRepo: cardRepo, deckRepo: deckRepo}
}

func (s *cardService) CreateCard(ctx context.Context, deckID int64, question, answer string) (*models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating card: deck_id=%d", deckID)

	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" {
		return nil, errors.NewValidationError("question", "cannot be empty")
	}
	if answer == "" {
		return nil, errors.NewValidationError("answer", "cannot be empty")
	}

	exists, err := s.deckRepo.Exists(ctx, deckID)
	if err != nil {
		log.Error("failed to check deck existence: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("deck", deckID)
	}

	card, err := s.cardRepo.Insert(ctx, deckID, question, answer)
	if err != nil {
		log.Error("failed to create card: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return card, nil
}

func (s *cardService) UpdateCard(ctx context.Context, id int64, question, answer string) (*models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating card: id=%d", id)

	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" {
		return nil, errors.NewValidationError("question", "cannot be empty")
	}
	if answer == "" {
		return nil, errors.NewValidationError("answer", "cannot be empty")
	}

	card, err := s.cardRepo.Update(ctx, id, question, answer)
	if err != nil {
		log.Error("failed to update card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}

	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting card: id=%d", id)

	exists, err := s.cardRepo.Exists(ctx, id)
	if err != nil {
		log.Error("failed to check card existence: %v", err)
		return errors.NewInternalError(err)
	}
	if !exists {
		return errors.NewNotFoundError("card", id)
	}

	if err := s.cardRepo.Delete(ctx, id); err != nil {
		log.Error("failed to delete card: %v", err)
		return errors.NewInternalError(err)
	}

	return nil
}
