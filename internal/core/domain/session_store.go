package domain

import (
	"context"
	"errors"
	"time"
)

// ErrUserExists is returned by RegisterUser when the user id is taken.
var ErrUserExists = errors.New("user id already registered")

// SessionStore defines the data-access contract for users and their sessions.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only.
type SessionStore interface {
	// RegisterUser creates the user. Returns ErrUserExists when userID is
	// already present; the check and the insert are atomic.
	RegisterUser(ctx context.Context, userID, userName string) error

	// AddSession appends a session to the user's collection in call order.
	AddSession(ctx context.Context, userID string, loginTime, logoutTime time.Time) error

	// GetSessions returns the user's sessions in insertion order.
	// Returns (nil, nil) when the user is unknown or has no sessions.
	GetSessions(ctx context.Context, userID string) ([]Session, error)

	// GetUser returns the registered user.
	// Returns (nil, nil) when the user is unknown.
	GetUser(ctx context.Context, userID string) (*User, error)

	// Users returns all registered users in registration order.
	Users(ctx context.Context) ([]User, error)
}
