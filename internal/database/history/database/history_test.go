package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bloops-games/improv/internal/database"
	"github.com/bloops-games/improv/internal/database/history/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{FilePath: filepath.Join(t.TempDir(), "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(ctx)
	})

	return New(db)
}

func TestFetchProfileStat(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	_, err := db.FetchProfileStat(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	first := model.NewEntry(1)
	first.Location = "Kitchen"
	first.Performed = 2 * time.Minute
	first.Expired = true
	first.Twist = "Power cut"
	first.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, db.Add(first))

	second := model.NewEntry(1)
	second.Location = "Library"
	second.Performed = 30 * time.Second
	require.NoError(t, db.Add(second))

	other := model.NewEntry(2)
	other.Location = "Moon"
	require.NoError(t, db.Add(other))

	entries, err := db.FetchByUserID(1)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	stat, err := db.FetchProfileStat(1)
	require.NoError(t, err)
	assert.Equal(t, 2, stat.Scenes)
	assert.Equal(t, 1, stat.Twists)
	assert.Equal(t, 1, stat.Completed)
	assert.Equal(t, 150*time.Second, stat.Performed)
	assert.Equal(t, 2*time.Minute, stat.LongestScene)
	assert.Equal(t, "Library", stat.LastLocation)

	_, err = db.FetchByUserID(3)
	assert.True(t, errors.Is(err, ErrNotFound))
}
