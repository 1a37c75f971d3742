package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store persists the adopted token of each dashboard session. Last write wins.
type Store interface {
	Load(ctx context.Context, id string) (token string, found bool, err error)
	Save(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// MemoryStore keeps tokens in process. Used in development and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: map[string]string{}}
}

func (m *MemoryStore) Load(_ context.Context, id string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tok, ok := m.tokens[id]
	return tok, ok, nil
}

func (m *MemoryStore) Save(_ context.Context, id, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[id] = token
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, id)
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tokens)
}
