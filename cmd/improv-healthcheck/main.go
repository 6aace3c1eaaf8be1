package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/bloops-games/improv/internal/logging"
	"github.com/bloops-games/improv/internal/server"
	"github.com/bloops-games/improv/internal/shutdown"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	URL      string        `envconfig:"IMPROV_HEALTH_URL" default:"http://localhost:1234/health"`
	Username string        `envconfig:"IMPROV_HEALTH_USERNAME"`
	Password string        `envconfig:"IMPROV_HEALTH_PASSWORD"`
	Timeout  time.Duration `envconfig:"IMPROV_HEALTH_TIMEOUT" default:"10s"`
}

func main() {
	ctx, cancel := shutdown.New()
	defer cancel()

	logger := logging.FromContext(ctx)
	config := Config{}
	if err := envconfig.Process("", &config); err != nil {
		logger.Fatalf("processing the config: %v", err)
	}

	client := &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:          10,
			DisableCompression:    true,
			IdleConnTimeout:       time.Minute,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	}

	status, err := server.Probe(ctx, client, config.URL, config.Username, config.Password)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stdout, err.Error())
		os.Exit(1)
	}

	_, _ = fmt.Fprintln(os.Stdout, status)
}
