package improvcli

import "time"

type Config struct {
	Debug bool `envconfig:"IMPROV_DEBUG" default:"false"`

	// Yaml file with locations, characters, conflicts and twists, the built in catalog is used when empty
	CatalogPath string `envconfig:"IMPROV_CATALOG_PATH"`

	// Timer step, one second in production
	TickInterval time.Duration `envconfig:"IMPROV_TICK_INTERVAL" default:"1s"`
}
