package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmateus/flashdeck/internal/db"
	"github.com/dmateus/flashdeck/internal/logger"
	"github.com/dmateus/flashdeck/internal/models"
	"github.com/dmateus/flashdeck/internal/repository"
)

type deckRepository struct {
	db *db.DB
}

// NewDeckRepository creates a new DeckRepository implementation
func NewDeckRepository(db *db.DB) repository.DeckRepository {
	return &deckRepository{db: db}
}

func (r *deckRepository) Insert(ctx context.Context, name string) (*models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("inserting deck: name=%s", name)

	var d models.Deck
	err := r.db.QueryRowContext(ctx, `
INSERT INTO decks (name)
VALUES (?)
RETURNING id, name, created_at
`, name).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if err != nil {
		log.Error("failed to insert deck: %v", err)
		return nil, err
	}
	log.Debug("deck inserted: id=%d", d.ID)
	return &d, nil
}

func (r *deckRepository) List(ctx context.Context) ([]models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("listing decks")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, created_at
FROM decks
ORDER BY created_at ASC, id ASC
`)
	if err != nil {
		log.Error("failed to list decks: %v", err)
		return nil, err
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		var d models.Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			log.Error("failed to scan deck row: %v", err)
			return nil, err
		}
		decks = append(decks, d)
	}

	log.Debug("found %d decks", len(decks))
	return decks, rows.Err()
}

func (r *deckRepository) Get(ctx context.Context, id int64) (*models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("getting deck: id=%d", id)

	var d models.Deck
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, created_at
FROM decks
WHERE id = ?
`, id).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("deck not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *deckRepository) Rename(ctx context.Context, id int64, name string) (*models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("renaming deck: id=%d, name=%s", id, name)

	var d models.Deck
	err := r.db.QueryRowContext(ctx, `
UPDATE decks
SET name = ?
WHERE id = ?
RETURNING id, name, created_at
`, name, id).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("deck not found for rename: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to rename deck: %v", err)
		return nil, err
	}
	return &d, nil
}

// Delete removes a deck with its cards and any streaks on those cards.
// Dependent rows go first so no orphaned streak state can survive.
func (r *deckRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("deleting deck and related data: id=%d", id)

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
DELETE FROM streaks
WHERE card_id IN (SELECT id FROM cards WHERE deck_id = ?)
`, id); err != nil {
			log.Error("failed to delete streaks for deck %d: %v", id, err)
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE deck_id = ?`, id); err != nil {
			log.Error("failed to delete cards for deck %d: %v", id, err)
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id); err != nil {
			log.Error("failed to delete deck %d: %v", id, err)
			return err
		}

		log.Debug("deck %d deleted with cascading data", id)
		return nil
	})
}

func (r *deckRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, "decks", id)
}
