package auth

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	store := NewSessionStore()

	token, err := store.Create(Session{UserID: "u1", Email: "a@b.c", IsAdmin: true})
	require.NoError(t, err)
	assert.Len(t, token, 64)

	session, ok := store.Get(token)
	require.True(t, ok)
	assert.Equal(t, "u1", session.UserID)
	assert.True(t, session.IsAdmin)

	store.Delete(token)
	_, ok = store.Get(token)
	assert.False(t, ok)
}

func TestSessionTokensAreUnique(t *testing.T) {
	store := NewSessionStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(Session{UserID: "u"})
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := store.Create(Session{UserID: "u"})
			if err != nil {
				t.Error(err)
				return
			}
			if _, ok := store.Get(token); !ok {
				t.Error("session missing after create")
			}
			store.Delete(token)
		}()
	}
	wg.Wait()
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
	assert.False(t, CheckPassword("not-a-hash", "hunter2"))
}
