package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromEnv(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := NewFromEnv(ctx, &Config{FilePath: filepath.Join(t.TempDir(), "improv.db")})
	require.NoError(t, err)
	require.NotNil(t, db.DB)
	require.NoError(t, db.Close(ctx))
}
