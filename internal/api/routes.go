package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/", s.handleHome)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Get("/users", s.handleListUsers)
	r.Post("/users", s.handleCreateUser)

	r.Get("/decks", s.handleListDecks)
	r.Post("/decks", s.handleCreateDeck)
	r.Patch("/decks/{id}", s.handleRenameDeck)
	r.Delete("/decks/{id}", s.handleDeleteDeck)
	r.Get("/decks/{id}/{userId}", s.handleDeckContent)

	r.Post("/cards", s.handleCreateCard)
	r.Patch("/cards/{id}", s.handleUpdateCard)
	r.Delete("/cards/{id}", s.handleDeleteCard)

	r.Put("/streaks/{cardId}/{userId}", s.handleRecordReview)
	r.Delete("/streaks/{cardId}/{userId}", s.handleResetStreak)

	return r
}
