package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmshelf/filmshelf/internal/domain"
)

// RatingsRepository keeps one score per (user, movie) pair.
type RatingsRepository struct {
	pool *pgxpool.Pool
}

// Upsert inserts or overwrites the caller's score for a movie and reports
// whether a new row was created. Scores outside 1-10 are rejected before
// touching storage; an unknown movie or user surfaces as ErrNotFound via the
// foreign keys.
func (r *RatingsRepository) Upsert(ctx context.Context, userID string, movieID int64, score int) (domain.Rating, bool, error) {
	if score < 1 || score > 10 {
		return domain.Rating{}, false, ErrInvalidScore
	}

	const query = `
        INSERT INTO ratings (user_id, movie_id, score)
        VALUES ($1,$2,$3)
        ON CONFLICT (user_id, movie_id)
        DO UPDATE SET score = EXCLUDED.score, rated_at = now()
        RETURNING user_id, movie_id, score, rated_at, (xmax = 0) AS inserted
    `

	var rating domain.Rating
	var inserted bool
	err := r.pool.QueryRow(ctx, query, userID, movieID, score).Scan(
		&rating.UserID,
		&rating.MovieID,
		&rating.Score,
		&rating.RatedAt,
		&inserted,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.Rating{}, false, ErrNotFound
		}
		return domain.Rating{}, false, err
	}
	return rating, inserted, nil
}

// Get retrieves one user's score for a movie.
func (r *RatingsRepository) Get(ctx context.Context, userID string, movieID int64) (domain.Rating, error) {
	const query = `
        SELECT user_id, movie_id, score, rated_at
        FROM ratings
        WHERE user_id = $1 AND movie_id = $2
    `
	var rating domain.Rating
	err := r.pool.QueryRow(ctx, query, userID, movieID).Scan(
		&rating.UserID,
		&rating.MovieID,
		&rating.Score,
		&rating.RatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Rating{}, ErrNotFound
		}
		return domain.Rating{}, err
	}
	return rating, nil
}

// Aggregate returns the average score and count for a movie. The average is
// nil when no ratings exist; it is never reported as 0.0 in that case.
func (r *RatingsRepository) Aggregate(ctx context.Context, movieID int64) (domain.RatingAggregate, error) {
	const query = `
        SELECT AVG(score)::float8, COUNT(*)::int8
        FROM ratings
        WHERE movie_id = $1
    `
	var agg domain.RatingAggregate
	if err := r.pool.QueryRow(ctx, query, movieID).Scan(&agg.Average, &agg.Count); err != nil {
		return domain.RatingAggregate{}, fmt.Errorf("aggregate ratings: %w", err)
	}
	return agg, nil
}
