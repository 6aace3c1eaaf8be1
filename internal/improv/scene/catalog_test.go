package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
locations: [Kitchen]
characters: [Chef, Waiter, Critic]
conflicts: [The soup is cold]
twists: [The critic is the chef's mother]
`)

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chef", "Waiter", "Critic"}, c.Characters)
	assert.Equal(t, 3, c.MaxActors())
}

func TestLoadCatalogInvalid(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
locations: [Kitchen]
characters: [Chef]
conflicts: [The soup is cold]
twists: []
`)

	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestLoadCatalogMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfiguration))
}

func TestDefaultCatalogCopies(t *testing.T) {
	t.Parallel()

	c1 := DefaultCatalog()
	c1.Locations[0] = "changed"

	c2 := DefaultCatalog()
	assert.NotEqual(t, "changed", c2.Locations[0])
}
