package domain

import "time"

// User represents a registered account. The hashed password never leaves the
// auth and repository layers.
type User struct {
	ID             string
	Username       string
	HashedPassword string
	RegisteredAt   time.Time
}
