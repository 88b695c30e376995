package repository

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmshelf/filmshelf/internal/domain"
)

// MinReviewLen is the minimum review length in characters after trimming.
const MinReviewLen = 20

// ReviewsRepository keeps at most one free-text review per (user, movie) pair.
// Unlike ratings, reviews are append-once: a second submission is rejected and
// the existing text is handed back for display.
type ReviewsRepository struct {
	pool *pgxpool.Pool
}

// Add appends a new review. The at-most-one rule is an application-level
// check here rather than a storage constraint.
func (r *ReviewsRepository) Add(ctx context.Context, userID string, movieID int64, text string) (domain.Review, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < MinReviewLen {
		return domain.Review{}, ErrReviewTooShort
	}

	existing, err := r.Get(ctx, userID, movieID)
	if err == nil {
		return domain.Review{}, &AlreadyReviewedError{Existing: existing.Text}
	}
	if !errors.Is(err, ErrNotFound) {
		return domain.Review{}, err
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO reviews (user_id, movie_id, review_text)
        VALUES ($1,$2,$3)
        RETURNING review_id, user_id, movie_id, review_text, written_at`,
		userID, movieID, text)

	var review domain.Review
	if err := row.Scan(&review.ID, &review.UserID, &review.MovieID, &review.Text, &review.WrittenAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.Review{}, ErrNotFound
		}
		return domain.Review{}, err
	}
	return review, nil
}

// Get retrieves one user's review for a movie.
func (r *ReviewsRepository) Get(ctx context.Context, userID string, movieID int64) (domain.Review, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT review_id, user_id, movie_id, review_text, written_at
        FROM reviews
        WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID)

	var review domain.Review
	err := row.Scan(&review.ID, &review.UserID, &review.MovieID, &review.Text, &review.WrittenAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Review{}, ErrNotFound
		}
		return domain.Review{}, err
	}
	return review, nil
}

// ListForMovie returns every review for a movie joined with the author's
// username, newest first.
func (r *ReviewsRepository) ListForMovie(ctx context.Context, movieID int64) ([]domain.ReviewEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT rv.review_id, rv.user_id, u.username, rv.review_text, rv.written_at
        FROM reviews rv
        JOIN users u ON u.user_id = rv.user_id
        WHERE rv.movie_id = $1
        ORDER BY rv.written_at DESC, rv.review_id DESC`,
		movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.ReviewEntry, 0)
	for rows.Next() {
		var e domain.ReviewEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.Text, &e.WrittenAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
