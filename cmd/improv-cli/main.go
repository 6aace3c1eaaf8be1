package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bloops-games/improv/internal/buildinfo"
	"github.com/bloops-games/improv/internal/improv/scene"
	"github.com/bloops-games/improv/internal/improvcli"
	"github.com/bloops-games/improv/internal/logging"
	"github.com/bloops-games/improv/internal/shutdown"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var version = "dev"

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(os.Stdout, buildinfo.GreetingCLI, buildinfo.ProjectName, version, buildinfo.GithubURL)

	ctx, done := shutdown.New()
	defer done()

	logger := logging.FromContext(ctx)
	if err := realMain(ctx); err != nil {
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context) error {
	_ = godotenv.Load()

	config := improvcli.Config{}
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("processing the config: %w", err)
	}

	ctx = logging.WithLogger(ctx, logging.NewLogger(config.Debug))

	catalog := scene.DefaultCatalog()
	if config.CatalogPath != "" {
		loaded, err := scene.LoadCatalog(config.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		catalog = loaded
	}

	term := improvcli.New(os.Stdin, os.Stdout, catalog, config.TickInterval)
	if err := term.Run(ctx); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}
