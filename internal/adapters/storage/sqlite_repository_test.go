package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	value, ok, err := repo.Get(context.Background(), "volume")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSQLiteRepository_SetManyAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetMany(ctx, map[string]string{
		"volume":    "0.3",
		"hold_mode": "red",
	}))

	value, ok, err := repo.Get(ctx, "volume")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0.3", value)

	value, ok, err = repo.Get(ctx, "hold_mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "red", value)
}

func TestSQLiteRepository_SetManyOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetMany(ctx, map[string]string{"volume": "0.3"}))
	require.NoError(t, repo.SetMany(ctx, map[string]string{"volume": "0.9"}))

	value, _, err := repo.Get(ctx, "volume")
	require.NoError(t, err)
	assert.Equal(t, "0.9", value)

	var count int64
	require.NoError(t, repo.db.Model(&PreferenceModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSQLiteRepository_SetManyEmpty(t *testing.T) {
	repo := newTestRepository(t)

	assert.NoError(t, repo.SetMany(context.Background(), nil))
}

func TestSQLiteRepository_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.SetMany(context.Background(), map[string]string{"hotkeys": `{"green":"F1"}`}))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(context.Background(), "hotkeys")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"green":"F1"}`, value)
}

func TestWithRetry(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		if calls < 3 {
			return sqlite3.Error{Code: sqlite3.ErrBusy}
		}
		return nil
	}, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)

	calls = 0
	boom := errors.New("boom")
	err = withRetry(func() error {
		calls++
		return boom
	}, 5)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)

	err = withRetry(func() error { return sqlite3.Error{Code: sqlite3.ErrLocked} }, 2)
	assert.ErrorContains(t, err, "after 2 retries")
}
