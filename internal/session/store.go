// internal/session/store.go
package session

import (
	"sync"

	"diet-client/internal/models"
)

// Store holds the single active session for a client instance. The
// session is replaced wholesale on profile changes and cleared on
// logout; there is never more than one.
type Store struct {
	mu      sync.RWMutex
	current *models.Member
}

func NewStore() *Store {
	return &Store{}
}

// Set replaces the active session.
func (s *Store) Set(member *models.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if member == nil {
		s.current = nil
		return
	}
	copied := *member
	s.current = &copied
}

// Current returns a copy of the active session, if any.
func (s *Store) Current() (models.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.Member{}, false
	}
	return *s.current, true
}

// Clear drops the active session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
