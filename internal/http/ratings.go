package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/filmshelf/filmshelf/internal/repository"
)

type ratingRequest struct {
	Score int `json:"score"`
}

type ratingResponse struct {
	MovieID int64     `json:"movieId"`
	UserID  string    `json:"userId"`
	Score   int       `json:"score"`
	RatedAt time.Time `json:"ratedAt"`
}

type ratingSummaryResponse struct {
	Average *float64 `json:"average,omitempty"`
	Count   int64    `json:"count"`
}

func (s *Server) handleSubmitRating(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.currentUser(w)
	if !ok {
		return
	}

	movieID, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	var req ratingRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	rating, inserted, err := s.repo.Ratings.Upsert(r.Context(), identity.UserID, movieID, req.Score)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidScore):
			s.respondError(w, http.StatusUnprocessableEntity, "INVALID_SCORE", "score must be an integer between 1 and 10")
		case errors.Is(err, repository.ErrNotFound):
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		default:
			s.logger.Printf("upsert rating error: %v", err)
			s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process rating")
		}
		return
	}

	status := http.StatusOK
	if inserted {
		status = http.StatusCreated
	}
	s.respondJSON(w, status, ratingResponse{
		MovieID: rating.MovieID,
		UserID:  rating.UserID,
		Score:   rating.Score,
		RatedAt: rating.RatedAt,
	})
}

func (s *Server) handleGetOwnRating(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.currentUser(w)
	if !ok {
		return
	}

	movieID, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	rating, err := s.repo.Ratings.Get(r.Context(), identity.UserID, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		s.logger.Printf("get rating error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch rating")
		return
	}

	s.respondJSON(w, http.StatusOK, ratingResponse{
		MovieID: rating.MovieID,
		UserID:  rating.UserID,
		Score:   rating.Score,
		RatedAt: rating.RatedAt,
	})
}

func (s *Server) handleRatingSummary(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	if _, err := s.repo.Movies.Get(r.Context(), movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		s.logger.Printf("fetch movie for rating summary failed: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch rating")
		return
	}

	agg, err := s.repo.Ratings.Aggregate(r.Context(), movieID)
	if err != nil {
		s.logger.Printf("aggregate rating error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch rating")
		return
	}

	s.respondJSON(w, http.StatusOK, ratingSummaryResponse{Average: agg.Average, Count: agg.Count})
}
