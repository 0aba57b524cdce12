package main

import (
	"context"
	"errors"
	"os"

	"github.com/reelcli/reel/internal/api"
	"github.com/reelcli/reel/internal/session"
	"github.com/reelcli/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	sessionPath := config.Session.Path
	if sessionPath == "" {
		sessionPath = shared.DefaultSessionPath()
	}

	store, err := session.NewFileStore(sessionPath)
	if err != nil {
		logger.Fatalf("failed to open session store: %v", err)
	}

	client := api.NewClient(config.API.BaseURL, nil)
	client.Limit(config.API.RequestsPerSecond)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Client: client,
		Store:  store,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "reel",
		Usage:    "Browse movies, watchlists, ratings & reviews from the terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) || errors.Is(err, shared.ErrSessionExpired) {
			logger.Error(err.Error())
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
