package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmshelf/filmshelf/internal/store"
)

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("repository: not found")

// ErrDuplicateUsername indicates the username is already taken. It is derived
// from the users.username unique constraint, which is the authoritative guard
// against concurrent registrations.
var ErrDuplicateUsername = errors.New("repository: username already taken")

// ErrInvalidScore indicates a rating outside the accepted 1-10 range.
var ErrInvalidScore = errors.New("repository: score must be between 1 and 10")

// ErrReviewTooShort indicates review text under the minimum length after
// trimming whitespace.
var ErrReviewTooShort = errors.New("repository: review text too short")

// AlreadyReviewedError is returned when a user submits a second review for the
// same movie. It carries the existing review so callers can display it.
type AlreadyReviewedError struct {
	Existing string
}

func (e *AlreadyReviewedError) Error() string {
	return fmt.Sprintf("repository: movie already reviewed: %s", e.Existing)
}

// Repository aggregates all domain-specific repositories.
type Repository struct {
	Users   *UsersRepository
	Movies  *MoviesRepository
	Ratings *RatingsRepository
	Reviews *ReviewsRepository
}

// New constructs a Repository backed by the provided store.
func New(st *store.Store) *Repository {
	return NewWithPool(st.Pool())
}

// NewWithPool allows constructing repositories directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Users:   &UsersRepository{pool: pool},
		Movies:  &MoviesRepository{pool: pool},
		Ratings: &RatingsRepository{pool: pool},
		Reviews: &ReviewsRepository{pool: pool},
	}
}
