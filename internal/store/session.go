package store

import "sync"

// memorySessionStore keeps the session marker in process memory: a new
// client process always starts logged out, while logout/login cycles inside
// the same process share it.
type memorySessionStore struct {
	mu       sync.RWMutex
	username string
}

// NewSessionStore returns an empty in-process [SessionStore].
func NewSessionStore() SessionStore {
	return &memorySessionStore{}
}

func (s *memorySessionStore) SetCurrentUser(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
}

func (s *memorySessionStore) CurrentUser() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.username == "" {
		return "", ErrSessionNotFound
	}
	return s.username, nil
}

func (s *memorySessionStore) ClearCurrentUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
}
