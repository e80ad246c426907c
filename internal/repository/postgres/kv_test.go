package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/BloggingApp/blog-store/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock
}

func TestMigrate(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(createKVTable)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, Migrate(context.Background(), mock))
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectValue)).
			WithArgs("posts").
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

		value, err := New(mock).Get(ctx, "posts")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), value)
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectValue)).
			WithArgs("posts").
			WillReturnError(pgx.ErrNoRows)

		_, err := New(mock).Get(ctx, "posts")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		mock := newMock(t)
		queryErr := errors.New("connection reset")
		mock.ExpectQuery(regexp.QuoteMeta(selectValue)).
			WithArgs("posts").
			WillReturnError(queryErr)

		_, err := New(mock).Get(ctx, "posts")
		assert.ErrorIs(t, err, queryErr)
	})
}

func TestSet(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(upsertValue)).
		WithArgs("posts", []byte("v1")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, New(mock).Set(context.Background(), "posts", []byte("v1")))
}

func TestCompareAndSwap(t *testing.T) {
	ctx := context.Background()

	t.Run("insert when absent", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(insertValue)).
			WithArgs("posts", []byte("v1")).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		swapped, err := New(mock).CompareAndSwap(ctx, "posts", nil, []byte("v1"))
		require.NoError(t, err)
		assert.True(t, swapped)
	})

	t.Run("insert conflict", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(insertValue)).
			WithArgs("posts", []byte("v1")).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		swapped, err := New(mock).CompareAndSwap(ctx, "posts", nil, []byte("v1"))
		require.NoError(t, err)
		assert.False(t, swapped)
	})

	t.Run("swap matching value", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(swapValue)).
			WithArgs("posts", []byte("v1"), []byte("v2")).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		swapped, err := New(mock).CompareAndSwap(ctx, "posts", []byte("v1"), []byte("v2"))
		require.NoError(t, err)
		assert.True(t, swapped)
	})

	t.Run("swap stale value", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(swapValue)).
			WithArgs("posts", []byte("stale"), []byte("v2")).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		swapped, err := New(mock).CompareAndSwap(ctx, "posts", []byte("stale"), []byte("v2"))
		require.NoError(t, err)
		assert.False(t, swapped)
	})
}
