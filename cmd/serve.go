package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"

	"github.com/tkowalski/go-htmx-examples/internal/html"
	"github.com/tkowalski/go-htmx-examples/internal/repositories"
	"github.com/tkowalski/go-htmx-examples/internal/server"
	"github.com/tkowalski/go-htmx-examples/internal/services"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
	"github.com/tkowalski/go-htmx-examples/internal/tasks"
)

// Serve runs the demo web server until interrupted, then drains in-flight
// task runners and open connections.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.config
	configPath := cmd.String("config")
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := shared.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		config = loaded
	}

	host := config.Server.Host
	if flagHost := cmd.String("host"); flagHost != "" {
		host = flagHost
	}
	port := config.Server.Port
	if flagPort := cmd.Int("port"); flagPort != 0 {
		port = flagPort
	}

	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	registry := tasks.NewRegistry()
	scheduler := tasks.NewScheduler(registry, r.logger)

	router, err := r.buildRouter(db, config, registry, scheduler)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if cmd.Bool("open") {
		url := fmt.Sprintf("http://%s/", addr)
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warn("failed to open browser", "url", url, "error", err)
		}
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	r.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := scheduler.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("task runners did not drain", "error", err)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

// buildRouter assembles the renderer, repositories, and one handler per
// demo behind a BasicRouter.
func (r *Runner) buildRouter(db *sql.DB, config *shared.Config, registry *tasks.Registry, scheduler *tasks.Scheduler) (*server.BasicRouter, error) {
	renderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}

	github := services.NewGithubService(config.GitHub.APIBaseURL, config.GitHub.Token, r.httpClient, config.GitHub.RateLimit)
	oauth := &oauth2.Config{
		ClientID:     config.OAuth.ClientID,
		ClientSecret: config.OAuth.ClientSecret,
		RedirectURL:  config.OAuth.RedirectURI,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     githuboauth.Endpoint,
	}

	router := server.NewBasicRouter()
	router.Use(server.RequestLogger(r.logger))

	router.Handler(server.NewIndexHandler(renderer, r.logger))
	router.Handler(server.NewTaskHandler(registry, scheduler, renderer, r.logger))
	router.Handler(server.NewStreamTaskHandler(registry, scheduler, renderer, r.logger))
	router.Handler(server.NewLotteryHandler(renderer, r.logger, time.Second))
	router.Handler(server.NewItemHandler(repositories.NewItemRepository(db), renderer, r.logger))
	router.Handler(server.NewContactHandler(repositories.NewContactRepository(db), renderer, r.logger))
	router.Handler(server.NewDocumentHandler(repositories.NewDocumentRepository(db), renderer, r.logger))
	router.Handler(server.NewAuthHandler(oauth, repositories.NewSessionRepository(db), github, renderer, r.logger))

	return router, nil
}
