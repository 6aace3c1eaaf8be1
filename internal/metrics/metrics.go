package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScenesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "improv_scenes_generated_total",
		Help: "Total number of generated scenes.",
	})

	TwistsThrown = promauto.NewCounter(prometheus.CounterOpts{
		Name: "improv_twists_thrown_total",
		Help: "Total number of twists thrown into running scenes.",
	})

	TimersExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "improv_timers_expired_total",
		Help: "Total number of scene timers that ran down to zero.",
	})

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "improv_start_validation_failures_total",
			Help: "Total number of rejected game starts by front end.",
		},
		[]string{"frontend"},
	)

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "improv_active_sessions",
		Help: "Number of game sessions currently held by the bot.",
	})
)
