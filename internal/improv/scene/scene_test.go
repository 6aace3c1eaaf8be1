package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(characters ...string) Catalog {
	return Catalog{
		Locations:  []string{"Kitchen", "Library"},
		Characters: characters,
		Conflicts:  []string{"Lost keys"},
		Twists:     []string{"Gravity doubles", "A twin appears"},
	}
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

func TestGenerateDistinctCharacters(t *testing.T) {
	t.Parallel()

	c := testCatalog("A", "B", "C")
	for i := 0; i < 500; i++ {
		s, err := Generate(c, 2)
		require.NoError(t, err)
		require.Len(t, s.Characters, 2)
		assert.NotEqual(t, s.Characters[0], s.Characters[1])
		for _, character := range s.Characters {
			assert.True(t, contains(c.Characters, character), "unknown character %q", character)
		}
		assert.True(t, contains(c.Locations, s.Location))
		assert.True(t, contains(c.Conflicts, s.Conflict))
		assert.False(t, s.HasTwist())
	}
}

func TestGenerateWholePool(t *testing.T) {
	t.Parallel()

	// duplicates in the pool must not lead to repeated characters
	c := testCatalog("A", "B", "B", "C", "A")
	for i := 0; i < 100; i++ {
		s, err := Generate(c, 3)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"A", "B", "C"}, s.Characters)
	}
}

func TestGenerateCoversAllPairs(t *testing.T) {
	t.Parallel()

	c := testCatalog("A", "B", "C")
	seen := map[[2]string]bool{}
	for i := 0; i < 2000; i++ {
		s, err := Generate(c, 2)
		require.NoError(t, err)
		seen[[2]string{s.Characters[0], s.Characters[1]}] = true
	}

	// every ordered pair of distinct characters shows up
	assert.Len(t, seen, 6)
}

func TestGenerateConfigurationErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		catalog    Catalog
		actorCount int
	}{
		{name: "actors_exceed_pool", catalog: testCatalog("A", "B", "C"), actorCount: 4},
		{name: "actors_exceed_distinct_pool", catalog: testCatalog("A", "A", "B"), actorCount: 3},
		{name: "zero_actors", catalog: testCatalog("A", "B"), actorCount: 0},
		{name: "empty_locations", catalog: Catalog{Characters: []string{"A", "B"}, Conflicts: []string{"x"}, Twists: []string{"y"}}, actorCount: 2},
		{name: "single_character", catalog: testCatalog("A", "A"), actorCount: 1},
		{name: "blank_conflict", catalog: Catalog{Locations: []string{"x"}, Characters: []string{"A", "B"}, Conflicts: []string{" "}, Twists: []string{"y"}}, actorCount: 2},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Generate(tc.catalog, tc.actorCount)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))
		})
	}
}

func TestTriggerTwist(t *testing.T) {
	t.Parallel()

	c := testCatalog("A", "B")
	s, err := Generate(c, 2)
	require.NoError(t, err)

	twisted := TriggerTwist(&s, c)
	require.NotNil(t, twisted)
	assert.True(t, twisted.HasTwist())
	assert.True(t, contains(c.Twists, twisted.Twist))
	assert.False(t, s.HasTwist(), "original scene must stay untouched")
	assert.Equal(t, s.Location, twisted.Location)
	assert.Equal(t, s.Characters, twisted.Characters)

	twisted.Characters[0] = "changed"
	assert.NotEqual(t, "changed", s.Characters[0])
}

func TestTriggerTwistWithoutScene(t *testing.T) {
	t.Parallel()

	assert.Nil(t, TriggerTwist(nil, testCatalog("A", "B")))
}

func TestDefaultCatalogIsValid(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	assert.GreaterOrEqual(t, c.MaxActors(), 5)
}
