package api

import (
	"github.com/dmateus/flashdeck/internal/db"
	"github.com/dmateus/flashdeck/internal/services"
)

// Server holds the service dependencies for the HTTP handlers.
type Server struct {
	DB            *db.DB
	UserService   services.UserService
	DeckService   services.DeckService
	CardService   services.CardService
	StreakService services.StreakService
}
