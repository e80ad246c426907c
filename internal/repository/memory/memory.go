package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/BloggingApp/blog-store/internal/repository"
)

// Storage keeps values in process memory. Used by tests and by the
// "memory" storage driver.
type Storage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func New() *Storage {
	return &Storage{
		values: make(map[string][]byte),
	}
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return bytes.Clone(value), nil
}

func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = bytes.Clone(value)
	return nil
}

func (s *Storage) CompareAndSwap(_ context.Context, key string, old, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.values[key]
	if old == nil {
		if ok {
			return false, nil
		}
	} else if !ok || !bytes.Equal(current, old) {
		return false, nil
	}

	s.values[key] = bytes.Clone(value)
	return true, nil
}
