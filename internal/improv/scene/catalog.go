package scene

import (
	"fmt"
	"os"
	"strings"

	"github.com/bloops-games/improv/internal/improv/resource"
	"gopkg.in/yaml.v2"
)

const minDistinctCharacters = 2

// Catalog is the read-only pool of prompts scenes are drawn from.
type Catalog struct {
	Locations  []string `yaml:"locations" json:"locations"`
	Characters []string `yaml:"characters" json:"characters"`
	Conflicts  []string `yaml:"conflicts" json:"conflicts"`
	Twists     []string `yaml:"twists" json:"twists"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Locations:  cloneStrings(resource.Locations),
		Characters: cloneStrings(resource.Characters),
		Conflicts:  cloneStrings(resource.Conflicts),
		Twists:     cloneStrings(resource.Twists),
	}
}

// LoadCatalog reads a YAML catalog file and validates it.
func LoadCatalog(path string) (Catalog, error) {
	var c Catalog
	bytes, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read catalog file: %w", err)
	}

	if err := yaml.Unmarshal(bytes, &c); err != nil {
		return c, fmt.Errorf("%w: unmarshal catalog: %v", ErrConfiguration, err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

// Validate fails with ErrConfiguration if any sequence is empty, holds a blank entry,
// or if there are fewer than two distinct characters.
func (c Catalog) Validate() error {
	sections := []struct {
		name  string
		items []string
	}{
		{name: "locations", items: c.Locations},
		{name: "characters", items: c.Characters},
		{name: "conflicts", items: c.Conflicts},
		{name: "twists", items: c.Twists},
	}

	for _, section := range sections {
		if len(section.items) == 0 {
			return fmt.Errorf("%w: %s is empty", ErrConfiguration, section.name)
		}

		for i, item := range section.items {
			if strings.TrimSpace(item) == "" {
				return fmt.Errorf("%w: %s[%d] is blank", ErrConfiguration, section.name, i)
			}
		}
	}

	if n := len(c.DistinctCharacters()); n < minDistinctCharacters {
		return fmt.Errorf(
			"%w: characters has %d distinct entries, need at least %d",
			ErrConfiguration,
			n,
			minDistinctCharacters,
		)
	}

	return nil
}

// DistinctCharacters returns the characters pool without duplicates, in catalog order.
func (c Catalog) DistinctCharacters() []string {
	seen := make(map[string]struct{}, len(c.Characters))
	distinct := make([]string, 0, len(c.Characters))
	for _, character := range c.Characters {
		if _, ok := seen[character]; ok {
			continue
		}
		seen[character] = struct{}{}
		distinct = append(distinct, character)
	}

	return distinct
}

// MaxActors is the largest actor count Generate accepts for this catalog.
func (c Catalog) MaxActors() int {
	return len(c.DistinctCharacters())
}

func cloneStrings(src []string) []string {
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
