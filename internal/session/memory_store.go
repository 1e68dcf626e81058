package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmfreyre/safeguard-client/internal/domain"
)

// MemoryStore implements Store in memory. It backs tests and one-shot
// invocations that must not touch the on-disk session.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// MemoryStoreFactory returns a factory producing a fresh MemoryStore.
func MemoryStoreFactory() StoreFactory {
	return func() (Store, error) {
		return NewMemoryStore(), nil
	}
}

// SaveLogin implements Store.SaveLogin.
func (s *MemoryStore) SaveLogin(_ context.Context, user domain.User, token string) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = map[string]string{
		KeyUserData:        string(userData),
		KeyUserEmail:       user.Email,
		KeyUserID:          user.ID,
		KeyIsAuthenticated: "true",
	}
	if token != "" {
		s.entries[KeyAuthToken] = token
	}

	return nil
}

// User implements Store.User.
func (s *MemoryStore) User(_ context.Context) (domain.User, bool, error) {
	s.mu.RLock()
	raw, ok := s.entries[KeyUserData]
	s.mu.RUnlock()

	if !ok {
		return domain.User{}, false, nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return domain.User{}, false, fmt.Errorf("unmarshal user: %w", err)
	}

	return user, true, nil
}

// Token implements Store.Token.
func (s *MemoryStore) Token(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.entries[KeyAuthToken]

	return token, ok
}

// IsAuthenticated implements Store.IsAuthenticated.
func (s *MemoryStore) IsAuthenticated(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, hasUser := s.entries[KeyUserData]

	return s.entries[KeyIsAuthenticated] == "true" && hasUser
}

// Clear implements Store.Clear.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]string)

	return nil
}

// Close implements Store.Close.
func (s *MemoryStore) Close() error { return nil }

// Keys returns the currently stored key names. Test helper.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}

	return keys
}
