package models

import "time"

type Card struct {
	ID        int64     `json:"id"`
	DeckID    int64     `json:"deck_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// CardWithStreak is a card left-joined against one user's streak record.
// Streak and NextReviewDate are nil when the user has never reviewed the card.
type CardWithStreak struct {
	ID             int64      `json:"id"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	CreatedAt      time.Time  `json:"created_at"`
	Streak         *int       `json:"streak"`
	NextReviewDate *time.Time `json:"next_review_date"`
	NeedsReview    bool       `json:"needs_review"`
}
