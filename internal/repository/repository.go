package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Storage is a key-value backing store holding opaque serialized values.
type Storage interface {
	// Get returns ErrNotFound when the key is missing.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// CompareAndSwap writes value only when the stored bytes equal old.
	// A nil old means the key must not exist yet.
	CompareAndSwap(ctx context.Context, key string, old, value []byte) (bool, error)
}

type Repository struct {
	Storage Storage
	Key     string
}

// New wraps storage. A nil storage means no backing store is available:
// reads fall back to the seed set and writes are skipped.
func New(storage Storage, key string) *Repository {
	return &Repository{
		Storage: storage,
		Key:     key,
	}
}

func (r *Repository) Available() bool {
	return r != nil && r.Storage != nil
}
