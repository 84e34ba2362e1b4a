// Package memory provides in-memory implementations of the durable Storage
// and staging FileStore collaborators. Used as the default for the demo host
// and as the reference implementation in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
)

// Storage is a mutex-guarded in-memory key-value store
type Storage struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ interfaces.Storage = &Storage{}

// NewStorage returns an empty storage
func NewStorage() *Storage {
	return &Storage{items: map[string]string{}}
}

func (s *Storage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[key]
	return value, ok, nil
}

func (s *Storage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *Storage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *Storage) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
