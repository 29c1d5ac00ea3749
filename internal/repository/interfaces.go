package repository

import (
	"context"
	"time"

	"github.com/dmateus/flashdeck/internal/models"
)

// UserRepository handles user data access
type UserRepository interface {
	Insert(ctx context.Context, name string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// DeckRepository handles deck data access
type DeckRepository interface {
	Insert(ctx context.Context, name string) (*models.Deck, error)
	List(ctx context.Context) ([]models.Deck, error)
	Get(ctx context.Context, id int64) (*models.Deck, error)
	Rename(ctx context.Context, id int64, name string) (*models.Deck, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// CardRepository handles card data access, including the per-user review
// state listing used by the deck content endpoint.
type CardRepository interface {
	Insert(ctx context.Context, deckID int64, question, answer string) (*models.Card, error)
	Update(ctx context.Context, id int64, question, answer string) (*models.Card, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ListForDeck(ctx context.Context, deckID, userID int64) ([]models.CardWithStreak, error)
}

// StreakRepository handles streak data access
type StreakRepository interface {
	Upsert(ctx context.Context, userID, cardID int64, count int, nextReview time.Time) (*models.Streak, error)
	Get(ctx context.Context, userID, cardID int64) (*models.Streak, error)
	Delete(ctx context.Context, userID, cardID int64) error
}
