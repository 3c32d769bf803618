package memory

import (
	"context"
	"sync"

	"github.com/its-jojoo/tabshelf/internal/adapter/storage"
)

// Store keeps blobs in process memory. Values are copied on the way in and
// out.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
