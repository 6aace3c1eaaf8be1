package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bloops-games/improv/internal/cache"
	"github.com/bloops-games/improv/internal/database"
	"github.com/bloops-games/improv/internal/database/user/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{FilePath: filepath.Join(t.TempDir(), "users.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(ctx)
	})

	return db
}

func TestStoreAndFetch(t *testing.T) {
	t.Parallel()

	lru, err := cache.NewLRU(16)
	require.NoError(t, err)

	db := New(newTestDB(t), lru)

	_, err = db.Fetch(1)
	assert.True(t, errors.Is(err, ErrNotFound))

	u := model.User{ID: 1, FirstName: "Ann", Username: "ann", CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Store(u))

	got, err := db.Fetch(1)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, 1, lru.Len())

	_, err = db.Fetch(2)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFetchWithoutCache(t *testing.T) {
	t.Parallel()

	db := New(newTestDB(t), nil)
	require.NoError(t, db.Store(model.User{ID: 7, FirstName: "Bob"}))

	got, err := db.Fetch(7)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.FirstName)
}
