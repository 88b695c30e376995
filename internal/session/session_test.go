package session

import "testing"

func TestSessionLifecycle(t *testing.T) {
	s := New()

	if _, ok := s.Current(); ok {
		t.Fatalf("new session must be empty")
	}

	s.Establish("user-1", "alice")
	identity, ok := s.Current()
	if !ok {
		t.Fatalf("expected active session")
	}
	if identity.UserID != "user-1" || identity.Username != "alice" {
		t.Fatalf("identity = %+v", identity)
	}

	// A new login replaces the prior session.
	s.Establish("user-2", "bob")
	identity, ok = s.Current()
	if !ok || identity.UserID != "user-2" || identity.Username != "bob" {
		t.Fatalf("identity after re-establish = %+v, ok=%v", identity, ok)
	}

	s.Clear()
	if _, ok := s.Current(); ok {
		t.Fatalf("cleared session must be empty")
	}
}
