package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmshelf/filmshelf/internal/domain"
)

// UsersRepository persists account records.
type UsersRepository struct {
	pool *pgxpool.Pool
}

const userColumns = `user_id, username, hashed_password, registration_date`

// Create inserts a new user with a freshly assigned identifier. A username
// collision surfaces as ErrDuplicateUsername via the unique constraint; there
// is deliberately no existence pre-check.
func (r *UsersRepository) Create(ctx context.Context, username, hashedPassword string) (domain.User, error) {
	id := uuid.NewString()
	row := r.pool.QueryRow(ctx, `
        INSERT INTO users (user_id, username, hashed_password)
        VALUES ($1, $2, $3)
        RETURNING `+userColumns,
		id, username, hashedPassword)

	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.User{}, ErrDuplicateUsername
		}
		return domain.User{}, err
	}
	return user, nil
}

// GetByUsername fetches a user by their login name.
func (r *UsersRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// GetByID fetches a user by identifier.
func (r *UsersRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.HashedPassword, &user.RegisteredAt)
	return user, err
}
