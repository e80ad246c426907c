package postgres

import (
	"context"
	"errors"

	"github.com/BloggingApp/blog-store/internal/repository"
	"github.com/jackc/pgx/v5"
)

const (
	selectValue = "SELECT value FROM kv_store WHERE key = $1"
	upsertValue = `INSERT INTO kv_store(key, value, updated_at) VALUES($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	insertValue = `INSERT INTO kv_store(key, value, updated_at) VALUES($1, $2, now())
		ON CONFLICT (key) DO NOTHING`
	swapValue = "UPDATE kv_store SET value = $3, updated_at = now() WHERE key = $1 AND value = $2"
)

type Storage struct {
	db Querier
}

func New(db Querier) *Storage {
	return &Storage{
		db: db,
	}
}

func (r *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	if err := r.db.QueryRow(ctx, selectValue, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return value, nil
}

func (r *Storage) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.Exec(ctx, upsertValue, key, value)
	return err
}

func (r *Storage) CompareAndSwap(ctx context.Context, key string, old, value []byte) (bool, error) {
	if old == nil {
		tag, err := r.db.Exec(ctx, insertValue, key, value)
		if err != nil {
			return false, err
		}
		return tag.RowsAffected() == 1, nil
	}

	tag, err := r.db.Exec(ctx, swapValue, key, old, value)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}
