package models

import "time"

// Streak is the spaced-repetition state for one (user, card) pair: the user
// has answered the card correctly Streak times in a row and should see it
// again on NextReviewDate. At most one row exists per pair.
type Streak struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	CardID         int64     `json:"card_id"`
	Streak         int       `json:"streak"`
	NextReviewDate time.Time `json:"next_review_date"`
}
