package session

import (
	"context"
	"encoding/json"
	"sync"

	"socialweb/models"
)

// MemoryStore is the in-process Store used by tests and redis-less
// deployments. Users are kept serialized so the deserialization path matches
// the durable store's.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string
	users  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]string),
		users:  make(map[string]string),
	}
}

func (s *MemoryStore) GetToken(_ context.Context, sid string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[sid], nil
}

func (s *MemoryStore) GetUser(_ context.Context, sid string) (*models.User, error) {
	s.mu.RLock()
	raw, ok := s.users[sid]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// Corrupt slot reads as logged out.
		return nil, nil
	}
	return &user, nil
}

func (s *MemoryStore) SetSession(_ context.Context, sid, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sid] = token
	s.users[sid] = string(raw)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sid)
	delete(s.users, sid)
	return nil
}

// SetRawUser overwrites the serialized user slot directly. Tests use it to
// exercise the corrupt-slot path.
func (s *MemoryStore) SetRawUser(sid, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[sid] = raw
}
