package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/dmateus/flashdeck/internal/db"
	"github.com/dmateus/flashdeck/internal/logger"
	"github.com/dmateus/flashdeck/internal/models"
	"github.com/dmateus/flashdeck/internal/repository"
)

type cardRepository struct {
	db *db.DB
}

// NewCardRepository creates a new CardRepository implementation
func NewCardRepository(db *db.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Insert(ctx context.Context, deckID int64, question, answer string) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("inserting card: deck_id=%d", deckID)

	var c models.Card
	err := r.db.QueryRowContext(ctx, `
INSERT INTO cards (deck_id, question, answer)
VALUES (?, ?, ?)
RETURNING id, deck_id, question, answer, created_at
`, deckID, question, answer).Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.CreatedAt)
	if err != nil {
		log.Error("failed to insert card: %v", err)
		return nil, err
	}
	log.Debug("card inserted: id=%d", c.ID)
	return &c, nil
}

func (r *cardRepository) Update(ctx context.Context, id int64, question, answer string) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("updating card: id=%d", id)

	var c models.Card
	err := r.db.QueryRowContext(ctx, `
UPDATE cards
SET question = ?, answer = ?
WHERE id = ?
RETURNING id, deck_id, question, answer, created_at
`, question, answer, id).Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("card not found for update: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to update card: %v", err)
		return nil, err
	}
	return &c, nil
}

// Delete removes a card and its streaks. Streaks go first so no orphaned
// streak state can survive the card.
func (r *cardRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("deleting card and its streaks: id=%d", id)

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM streaks WHERE card_id = ?`, id); err != nil {
			log.Error("failed to delete streaks for card %d: %v", id, err)
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id); err != nil {
			log.Error("failed to delete card %d: %v", id, err)
			return err
		}
		log.Debug("card %d deleted with its streaks", id)
		return nil
	})
}

func (r *cardRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, "cards", id)
}

// ListForDeck returns every card in the deck, left-joined against the given
// user's streaks, in creation order. Cards the user has never reviewed come
// back with nil streak state.
func (r *cardRepository) ListForDeck(ctx context.Context, deckID, userID int64) ([]models.CardWithStreak, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("listing cards with review state: deck_id=%d, user_id=%d", deckID, userID)

	query := sqlBuilder.
		Select("c.id", "c.question", "c.answer", "c.created_at", "s.streak", "s.next_review_date").
		From("cards c").
		LeftJoin("streaks s ON s.card_id = c.id AND s.user_id = ?", userID).
		Where(squirrel.Eq{"c.deck_id": deckID}).
		OrderBy("c.created_at ASC", "c.id ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.CardWithStreak
	for rows.Next() {
		var c models.CardWithStreak
		var streak sql.NullInt64
		var nextReview sql.NullTime
		if err := rows.Scan(&c.ID, &c.Question, &c.Answer, &c.CreatedAt, &streak, &nextReview); err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		if streak.Valid {
			v := int(streak.Int64)
			c.Streak = &v
		}
		if nextReview.Valid {
			v := nextReview.Time
			c.NextReviewDate = &v
		}
		cards = append(cards, c)
	}

	log.Debug("found %d cards in deck %d", len(cards), deckID)
	return cards, rows.Err()
}
