package redisrepo

import (
	"bytes"
	"context"
	"errors"

	"github.com/BloggingApp/blog-store/internal/repository"
	"github.com/redis/go-redis/v9"
)

type Storage struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Storage {
	return &Storage{
		rdb: rdb,
	}
}

func (r *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.rdb.Get(ctx, StorageKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (r *Storage) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, StorageKey(key), value, 0).Err()
}

func (r *Storage) CompareAndSwap(ctx context.Context, key string, old, value []byte) (bool, error) {
	redisKey := StorageKey(key)
	swapped := false

	err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, redisKey).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			if old != nil {
				return nil
			}
		case err != nil:
			return err
		default:
			if old == nil || !bytes.Equal(current, old) {
				return nil
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, redisKey, value, 0)
			return nil
		})
		if err != nil {
			return err
		}

		swapped = true
		return nil
	}, redisKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return swapped, nil
}
