package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU(t *testing.T) {
	t.Parallel()

	c, err := NewLRU(2)
	require.NoError(t, err)

	c.Add(int64(1), "one")
	c.Add(int64(2), "two")

	v, ok := c.Get(int64(1))
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, 2, c.Len())

	c.Delete(int64(1))
	_, ok = c.Get(int64(1))
	assert.False(t, ok)
	assert.Len(t, c.Keys(), 1)
}

func TestNewLRUInvalidSize(t *testing.T) {
	t.Parallel()

	_, err := NewLRU(0)
	assert.Error(t, err)
}
