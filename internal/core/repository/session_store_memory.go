package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/duynhne/user-analytics-service/internal/core/domain"
)

// MemorySessionStore implements domain.SessionStore in process memory.
// It is safe for concurrent access. State lives for the process lifetime and
// only grows: users and sessions are never removed.
type MemorySessionStore struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	order    []string
	sessions map[string][]domain.Session
}

// NewMemorySessionStore creates an empty MemorySessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		users:    make(map[string]domain.User),
		sessions: make(map[string][]domain.Session),
	}
}

// RegisterUser creates the user unless userID is already registered.
func (s *MemorySessionStore) RegisterUser(_ context.Context, userID, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; ok {
		return fmt.Errorf("register %q: %w", userID, domain.ErrUserExists)
	}
	s.users[userID] = domain.User{ID: userID, Name: userName}
	s.order = append(s.order, userID)
	return nil
}

// AddSession appends a session to the user's collection, creating it lazily.
func (s *MemorySessionStore) AddSession(_ context.Context, userID string, loginTime, logoutTime time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = append(s.sessions[userID], domain.NewSession(loginTime, logoutTime))
	return nil
}

// GetSessions returns a copy of the user's sessions in insertion order.
// Returns (nil, nil) when the user has none.
func (s *MemorySessionStore) GetSessions(_ context.Context, userID string) ([]domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.sessions[userID]
	if len(stored) == 0 {
		return nil, nil
	}
	out := make([]domain.Session, len(stored))
	copy(out, stored)
	return out, nil
}

// GetUser returns the registered user, or (nil, nil) when unknown.
func (s *MemorySessionStore) GetUser(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// Users returns all registered users in registration order.
func (s *MemorySessionStore) Users(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.users[id])
	}
	return out, nil
}
