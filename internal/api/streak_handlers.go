package api

import (
	"net/http"
)

type reviewRequest struct {
	// min=1: a streak below 1 is rejected at the boundary, before the
	// service computes an interval or touches storage.
	Streak int `json:"streak" validate:"required,min=1"`
}

func (s *Server) handleRecordReview(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "cardId")
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req reviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	streak, err := s.StreakService.RecordReview(r.Context(), userID, cardID, req.Streak)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, streak)
}

func (s *Server) handleResetStreak(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "cardId")
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.StreakService.ResetStreak(r.Context(), userID, cardID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
