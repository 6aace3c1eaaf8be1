package improvbot

import (
	"time"

	"github.com/bloops-games/improv/internal/database"
)

type Config struct {
	// Logging all requests and responses from telegram
	Debug bool `envconfig:"IMPROV_DEBUG" default:"false"`

	// Telegram bot token
	BotToken string `envconfig:"IMPROV_BOT_TOKEN"`

	// Number of items in the cache
	CacheSize int `envconfig:"IMPROV_CACHE_SIZE" default:"1024"`

	//  Port on which health check and metrics are launched
	Port string `envconfig:"IMPROV_PORT" default:"1234"`

	// profile port
	ProfPort string `envconfig:"IMPROV_PROF_PORT" default:"8888"`

	// Yaml file with locations, characters, conflicts and twists, the built in catalog is used when empty
	CatalogPath string `envconfig:"IMPROV_CATALOG_PATH"`

	// Scene length for quick start, seconds
	DefaultDuration int `envconfig:"IMPROV_DEFAULT_DURATION" default:"180"`

	// Timer step, one second in production
	TickInterval time.Duration `envconfig:"IMPROV_TICK_INTERVAL" default:"1s"`

	// Waiting time to complete the game settings
	BuildingTimeout time.Duration `envconfig:"IMPROV_BUILDING_TIMEOUT" default:"30m"`

	// Idle time after which a game without a running timer is closed
	SessionTimeout time.Duration `envconfig:"IMPROV_SESSION_TIMEOUT" default:"2h"`

	// How often idle games are looked for
	CleanupInterval  time.Duration `envconfig:"IMPROV_CLEANUP_INTERVAL" default:"1m"`
	TgBotPollTimeout time.Duration `envconfig:"IMPROV_TG_BOT_POLL_TIMEOUT" default:"60s"`
	DB               database.Config
}
