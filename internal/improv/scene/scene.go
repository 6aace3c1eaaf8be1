package scene

import (
	"fmt"

	"github.com/valyala/fastrand"
)

var ErrConfiguration = fmt.Errorf("catalog configuration")

// Scene is one round's bundle of prompts. Twist is empty until thrown.
type Scene struct {
	Location   string   `json:"location"`
	Characters []string `json:"characters"`
	Conflict   string   `json:"conflict"`
	Twist      string   `json:"twist,omitempty"`
}

func (s Scene) HasTwist() bool {
	return s.Twist != ""
}

// Generate draws a new scene. Characters are sampled without replacement, so
// they are pairwise distinct; actorCount above the distinct pool is rejected
// before any sampling happens.
func Generate(c Catalog, actorCount int) (Scene, error) {
	if err := c.Validate(); err != nil {
		return Scene{}, err
	}

	pool := c.DistinctCharacters()
	if actorCount < 1 || actorCount > len(pool) {
		return Scene{}, fmt.Errorf(
			"%w: %d actors requested, characters pool has %d distinct entries",
			ErrConfiguration,
			actorCount,
			len(pool),
		)
	}

	// partial Fisher-Yates, pool is already a private copy
	for i := 0; i < actorCount; i++ {
		j := i + int(fastrand.Uint32n(uint32(len(pool)-i)))
		pool[i], pool[j] = pool[j], pool[i]
	}

	characters := make([]string, actorCount)
	copy(characters, pool[:actorCount])

	return Scene{
		Location:   pick(c.Locations),
		Characters: characters,
		Conflict:   pick(c.Conflicts),
	}, nil
}

// TriggerTwist returns a copy of s with a freshly drawn twist. A prior twist is
// overwritten; callers decide whether a second throw is allowed. Nil in, nil out.
func TriggerTwist(s *Scene, c Catalog) *Scene {
	if s == nil || len(c.Twists) == 0 {
		return s
	}

	twisted := *s
	twisted.Characters = cloneStrings(s.Characters)
	twisted.Twist = pick(c.Twists)

	return &twisted
}

func pick(items []string) string {
	return items[fastrand.Uint32n(uint32(len(items)))]
}
