package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/filmshelf/filmshelf/internal/domain"
	"github.com/filmshelf/filmshelf/internal/repository"
)

type reviewRequest struct {
	Text string `json:"text"`
}

type reviewResponse struct {
	ReviewID  int64     `json:"reviewId"`
	MovieID   int64     `json:"movieId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	WrittenAt time.Time `json:"writtenAt"`
}

type reviewEntryResponse struct {
	ReviewID  int64            `json:"reviewId"`
	UserID    string           `json:"userId"`
	Username  string           `json:"username"`
	Text      string           `json:"text"`
	WrittenAt time.Time        `json:"writtenAt"`
	Sentiment domain.Sentiment `json:"sentiment,omitempty"`
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.currentUser(w)
	if !ok {
		return
	}

	movieID, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	var req reviewRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	review, err := s.repo.Reviews.Add(r.Context(), identity.UserID, movieID, req.Text)
	if err != nil {
		var already *repository.AlreadyReviewedError
		switch {
		case errors.Is(err, repository.ErrReviewTooShort):
			s.respondError(w, http.StatusUnprocessableEntity, "TOO_SHORT", "review must be at least 20 characters long")
		case errors.As(err, &already):
			s.respondErrorDetails(w, http.StatusConflict, "ALREADY_REVIEWED",
				"You have already reviewed this movie", map[string]string{"existing": already.Existing})
		case errors.Is(err, repository.ErrNotFound):
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		default:
			s.logger.Printf("add review error: %v", err)
			s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add review")
		}
		return
	}

	s.respondJSON(w, http.StatusCreated, reviewResponse{
		ReviewID:  review.ID,
		MovieID:   review.MovieID,
		UserID:    review.UserID,
		Text:      review.Text,
		WrittenAt: review.WrittenAt,
	})
}

func (s *Server) handleGetOwnReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.currentUser(w)
	if !ok {
		return
	}

	movieID, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	review, err := s.repo.Reviews.Get(r.Context(), identity.UserID, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		s.logger.Printf("get review error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch review")
		return
	}

	s.respondJSON(w, http.StatusOK, reviewResponse{
		ReviewID:  review.ID,
		MovieID:   review.MovieID,
		UserID:    review.UserID,
		Text:      review.Text,
		WrittenAt: review.WrittenAt,
	})
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	entries, err := s.repo.Reviews.ListForMovie(r.Context(), movieID)
	if err != nil {
		s.logger.Printf("list reviews error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}

	items := make([]reviewEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, reviewEntryResponse{
			ReviewID:  e.ID,
			UserID:    e.UserID,
			Username:  e.Username,
			Text:      e.Text,
			WrittenAt: e.WrittenAt,
			Sentiment: s.labelReview(r.Context(), e.Text),
		})
	}
	s.respondJSON(w, http.StatusOK, items)
}

// labelReview asks the external labeler for a sentiment, best effort. Missing
// client or upstream failure both yield an empty label.
func (s *Server) labelReview(ctx context.Context, text string) domain.Sentiment {
	if s.sentiment == nil {
		return ""
	}

	labelCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.SentimentTimeoutSecs)*time.Second)
	defer cancel()

	label, err := s.sentiment.Label(labelCtx, text)
	if err != nil {
		s.logger.Printf("sentiment label failed: %v", err)
		return ""
	}
	return label
}
