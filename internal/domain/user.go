package domain

import (
	"context"
	"time"
)

// User represents a registered account. PasswordHash is only ever a bcrypt
// hash; the raw secret is never persisted or logged.
type User struct {
	ID              int64
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Identity is the claim set resolved from a verified session token. It is
// decoded from the token itself, not loaded from the store, so it may outlive
// the underlying user record until the token expires.
type Identity struct {
	UserID int64
	Email  string
}

// UserRepository defines persistence operations for users. Create must
// enforce the unique email constraint and report violations as
// ErrDuplicateEmail; the constraint is the final arbiter when two signups
// race on the same address.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
