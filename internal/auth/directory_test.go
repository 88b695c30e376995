package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/filmshelf/filmshelf/internal/domain"
	"github.com/filmshelf/filmshelf/internal/repository"
)

// fakeUserStore is an in-memory UserStore for directory tests.
type fakeUserStore struct {
	users map[string]domain.User
	next  int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]domain.User)}
}

func (s *fakeUserStore) Create(_ context.Context, username, hashedPassword string) (domain.User, error) {
	if _, ok := s.users[username]; ok {
		return domain.User{}, repository.ErrDuplicateUsername
	}
	s.next++
	user := domain.User{
		ID:             fmt.Sprintf("user-%d", s.next),
		Username:       username,
		HashedPassword: hashedPassword,
		RegisteredAt:   time.Now().UTC(),
	}
	s.users[username] = user
	return user, nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (domain.User, error) {
	user, ok := s.users[username]
	if !ok {
		return domain.User{}, repository.ErrNotFound
	}
	return user, nil
}

func TestDirectoryRegisterAndLogin(t *testing.T) {
	dir := NewDirectory(newFakeUserStore())
	ctx := context.Background()

	registered, err := dir.Register(ctx, "alice", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.HashedPassword == "hunter22" {
		t.Fatalf("password stored in plaintext")
	}

	loggedIn, err := dir.Login(ctx, "alice", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != registered.ID {
		t.Fatalf("login ID = %s, want %s", loggedIn.ID, registered.ID)
	}
}

func TestDirectoryRegisterValidation(t *testing.T) {
	dir := NewDirectory(newFakeUserStore())
	ctx := context.Background()

	if _, err := dir.Register(ctx, "ab", "hunter22"); !errors.Is(err, ErrUsernameTooShort) {
		t.Fatalf("short username error = %v, want ErrUsernameTooShort", err)
	}
	if _, err := dir.Register(ctx, "  ab  ", "hunter22"); !errors.Is(err, ErrUsernameTooShort) {
		t.Fatalf("padded short username error = %v, want ErrUsernameTooShort", err)
	}
	if _, err := dir.Register(ctx, "alice", "12345"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("short password error = %v, want ErrPasswordTooShort", err)
	}
}

func TestDirectoryDuplicateUsername(t *testing.T) {
	dir := NewDirectory(newFakeUserStore())
	ctx := context.Background()

	if _, err := dir.Register(ctx, "alice", "hunter22"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := dir.Register(ctx, "alice", "different-password")
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("duplicate register error = %v, want ErrDuplicateUsername", err)
	}
}

func TestDirectoryLoginIndistinguishableFailures(t *testing.T) {
	dir := NewDirectory(newFakeUserStore())
	ctx := context.Background()

	if _, err := dir.Register(ctx, "alice", "hunter22"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPassword := dir.Login(ctx, "alice", "wrong-password")
	_, unknownUser := dir.Login(ctx, "nobody", "hunter22")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want ErrInvalidCredentials", wrongPassword)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user error = %v, want ErrInvalidCredentials", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("failure modes must be indistinguishable: %q vs %q", wrongPassword, unknownUser)
	}
}
