package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/filmshelf/filmshelf/internal/domain"
	"github.com/filmshelf/filmshelf/internal/repository"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password,
// so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("auth: invalid username or password")

// ErrUsernameTooShort indicates a username under 3 characters after trimming.
var ErrUsernameTooShort = errors.New("auth: username must be at least 3 characters")

// ErrPasswordTooShort indicates a password under 6 characters.
var ErrPasswordTooShort = errors.New("auth: password must be at least 6 characters")

// UserStore is the persistence contract the directory needs. Implemented by
// repository.UsersRepository.
type UserStore interface {
	Create(ctx context.Context, username, hashedPassword string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// Directory registers accounts and authenticates logins.
type Directory struct {
	users UserStore
}

// NewDirectory constructs a Directory over the given store.
func NewDirectory(users UserStore) *Directory {
	return &Directory{users: users}
}

// Register validates the credentials, hashes the password, and stores the new
// account. Username collisions surface as repository.ErrDuplicateUsername from
// the store's uniqueness constraint.
func (d *Directory) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return domain.User{}, ErrUsernameTooShort
	}
	if len(password) < 6 {
		return domain.User{}, ErrPasswordTooShort
	}

	hash, err := HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}
	return d.users.Create(ctx, username, hash)
}

// Login authenticates a user and returns the stored account. Unknown username
// and wrong password are indistinguishable to the caller; storage faults are
// reported as-is.
func (d *Directory) Login(ctx context.Context, username, password string) (domain.User, error) {
	user, err := d.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if !VerifyPassword(password, user.HashedPassword) {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}
