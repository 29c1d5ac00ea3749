package models

import "time"

type Deck struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DeckContent is a deck together with its cards annotated with the
// requesting user's review state. It is assembled per request, never stored.
type DeckContent struct {
	Deck
	Cards []CardWithStreak `json:"cards"`
}
