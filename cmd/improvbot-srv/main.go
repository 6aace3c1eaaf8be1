package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/bloops-games/improv/internal/buildinfo"
	"github.com/bloops-games/improv/internal/cache"
	"github.com/bloops-games/improv/internal/database"
	historyDb "github.com/bloops-games/improv/internal/database/history/database"
	userDb "github.com/bloops-games/improv/internal/database/user/database"
	"github.com/bloops-games/improv/internal/improv/scene"
	"github.com/bloops-games/improv/internal/improvbot"
	"github.com/bloops-games/improv/internal/logging"
	"github.com/bloops-games/improv/internal/server"
	"github.com/bloops-games/improv/internal/shutdown"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
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
	if err := realMain(ctx, done); err != nil {
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context, done func()) error {
	_ = godotenv.Load()

	config := improvbot.Config{}
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("processing the config: %w", err)
	}

	logger := logging.NewLogger(config.Debug)
	ctx = logging.WithLogger(ctx, logger)

	if config.BotToken == "" {
		return fmt.Errorf(
			"bot token not found, please visit %s to register your bot and get a token",
			buildinfo.BotFatherURL,
		)
	}

	catalog := scene.DefaultCatalog()
	if config.CatalogPath != "" {
		loaded, err := scene.LoadCatalog(config.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		catalog = loaded
	}

	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	tg, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		return fmt.Errorf("bot api: %w", err)
	}

	tg.Debug = config.Debug
	logger.Infof("Authorization in telegram was successful: %s", tg.Self.UserName)

	db, err := database.NewFromEnv(ctx, &config.DB)
	if err != nil {
		return fmt.Errorf("new database from env: %w", err)
	}

	defer db.Close(ctx)

	userCache, err := cache.NewLRU(config.CacheSize)
	if err != nil {
		return fmt.Errorf("can not create lru cache: %w", err)
	}

	srv, err := server.New(config.Port)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	go func() {
		if err := srv.ServeHTTP(ctx, &http.Server{Handler: server.NewMux(ctx)}); err != nil {
			logger.Errorf("srv.ServeHTTP: %v", err)
			done()
		}
	}()

	go func() {
		if err := http.ListenAndServe(":"+config.ProfPort, nil); err != nil {
			logger.Errorf("pprof default sever: %v", err)
			done()
		}
	}()

	manager := improvbot.NewManager(tg, &config, catalog, userDb.New(db, userCache), historyDb.New(db))
	if err := manager.Run(ctx); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}
