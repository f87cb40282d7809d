package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tkowalski/go-htmx-examples/internal/services"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	github := services.NewGithubService(config.GitHub.APIBaseURL, config.GitHub.Token, nil, config.GitHub.RateLimit)

	runner := NewRunner(RunnerOpts{
		Config: config,
		GitHub: github,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "htmx-examples",
		Usage:    "Server-rendered HTMX demo applications & GitHub issue tooling",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
