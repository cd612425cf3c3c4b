package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/repo_interfaces"
)

// Store holds collections in memory. Used by tests and dry runs; nothing
// survives the process.
type Store struct {
	mu          sync.Mutex
	collections map[string][]json.RawMessage
}

var _ repo_interfaces.CollectionStore = (*Store)(nil)

func New() *Store {
	return &Store{collections: make(map[string][]json.RawMessage)}
}

func (s *Store) Load(_ context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.collections[collection]
	records := make([]json.RawMessage, len(stored))
	copy(records, stored)

	return records, nil
}

func (s *Store) Save(_ context.Context, collection string, records []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]json.RawMessage, len(records))
	copy(stored, records)
	s.collections[collection] = stored

	return nil
}

func (s *Store) Close() error {
	return nil
}
