package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	s := NewSessionStore()

	_, err := s.CurrentUser()
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s.SetCurrentUser("alice")
	user, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "alice", user)

	s.ClearCurrentUser()
	s.ClearCurrentUser()
	_, err = s.CurrentUser()
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	s := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetCurrentUser("alice")
		}()
		go func() {
			defer wg.Done()
			_, _ = s.CurrentUser()
		}()
	}
	wg.Wait()

	user, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "alice", user)
}
