package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmateus/flashdeck/internal/errors"
	"github.com/dmateus/flashdeck/internal/logger"
	"github.com/dmateus/flashdeck/internal/models"
	"github.com/dmateus/flashdeck/internal/repository"
	"github.com/dmateus/flashdeck/internal/review"
)

// DeckService handles deck-related business logic, including assembling a
// deck's cards with per-user review state.
type DeckService interface {
	ListDecks(ctx context.Context) ([]models.Deck, error)
	CreateDeck(ctx context.Context, name string) (*models.Deck, error)
	RenameDeck(ctx context.Context, id int64, name string) (*models.Deck, error)
	DeleteDeck(ctx context.Context, id int64) error
	GetDeckContent(ctx context.Context, deckID, userID int64) (*models.DeckContent, error)
}

type deckService struct {
	deckRepo repository.DeckRepository
	cardRepo repository.CardRepository
	userRepo repository.UserRepository
}

// NewDeckService creates a new DeckService
func NewDeckService(deckRepo repository.DeckRepository, cardRepo repository.CardRepository, userRepo repository.UserRepository) DeckService {
	return &deckService{deckRepo: deckRepo, cardRepo: cardRepo, userRepo: userRepo}
}

func (s *deckService) ListDecks(ctx context.Context) ([]models.Deck, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing decks")

	decks, err := s.deckRepo.List(ctx)
	if err != nil {
		log.Error("failed to list decks: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return decks, nil
}

func (s *deckService) CreateDeck(ctx context.Context, name string) (*models.Deck, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating deck: name=%s", name)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}

	deck, err := s.deckRepo.Insert(ctx, name)
	if err != nil {
		log.Error("failed to create deck: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return deck, nil
}

func (s *deckService) RenameDeck(ctx context.Context, id int64, name string) (*models.Deck, error) {
	log := logger.FromContext(ctx)
	log.Debug("renaming deck: id=%d", id)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}

	deck, err := s.deckRepo.Rename(ctx, id, name)
	if err != nil {
		log.Error("failed to rename deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", id)
	}

	return deck, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting deck: id=%d", id)

	exists, err := s.deckRepo.Exists(ctx, id)
	if err != nil {
		log.Error("failed to check deck existence: %v", err)
		return errors.NewInternalError(err)
	}
	if !exists {
		return errors.NewNotFoundError("deck", id)
	}

	if err := s.deckRepo.Delete(ctx, id); err != nil {
		log.Error("failed to delete deck: %v", err)
		return errors.NewInternalError(err)
	}

	return nil
}

// GetDeckContent returns the deck and its cards annotated with the user's
// review state. The user and deck are checked separately so a missing user
// and a missing deck surface as distinct not-found errors.
func (s *deckService) GetDeckContent(ctx context.Context, deckID, userID int64) (*models.DeckContent, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting deck content: deck_id=%d, user_id=%d", deckID, userID)

	userExists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		log.Error("failed to check user existence: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if !userExists {
		return nil, errors.NewNotFoundError("user", userID)
	}

	deck, err := s.deckRepo.Get(ctx, deckID)
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", deckID)
	}

	cards, err := s.cardRepo.ListForDeck(ctx, deckID, userID)
	if err != nil {
		log.Error("failed to list cards for deck: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// A deck with no cards is an empty list, not an error.
	if cards == nil {
		cards = []models.CardWithStreak{}
	}

	today := time.Now()
	for i := range cards {
		cards[i].NeedsReview = review.Due(today, cards[i].NextReviewDate)
	}

	log.Debug("deck content assembled: %d cards", len(cards))
	return &models.DeckContent{Deck: *deck, Cards: cards}, nil
}
