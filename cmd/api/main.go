package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mishasvintus/builder_site/internal/builder"
	"github.com/mishasvintus/builder_site/internal/cache"
	"github.com/mishasvintus/builder_site/internal/config"
	"github.com/mishasvintus/builder_site/internal/handler"
	"github.com/mishasvintus/builder_site/internal/logger"
	"github.com/mishasvintus/builder_site/internal/metrics"
	"github.com/mishasvintus/builder_site/internal/render"
	"github.com/mishasvintus/builder_site/internal/repository"
	"github.com/mishasvintus/builder_site/internal/router"
	"github.com/mishasvintus/builder_site/internal/service"
	"github.com/mishasvintus/builder_site/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := repository.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	m := metrics.New()

	fetcher, closeFetcher, err := newContentFetcher(cfg, log, m)
	if err != nil {
		return err
	}
	defer closeFetcher()

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}

	teamService := service.NewTeamService(db)
	contentService := service.NewContentService(fetcher, log.With(logger.String("component", "content")))

	r := router.SetupRoutes(router.Deps{
		Log:         log,
		Metrics:     m,
		Sessions:    session.NewManager(cfg.Auth.Secret),
		Templates:   renderer.Templates(),
		TeamHandler: handler.NewTeamHandler(teamService),
		PageHandler: handler.NewPageHandler(contentService, renderer),
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", logger.String("addr", addr), logger.Bool("content_enabled", fetcher != nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-quit:
	}

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}

// newContentFetcher creates the content API client once, and only when an
// API key is configured. A nil fetcher puts the site in fallback mode.
func newContentFetcher(cfg *config.Config, log logger.Logger, m *metrics.Metrics) (service.ContentFetcher, func(), error) {
	noop := func() {}

	if !cfg.Builder.Enabled() {
		log.Warn("NEXT_PUBLIC_BUILDER_API_KEY is not set, serving fallback pages")
		return nil, noop, nil
	}

	opts := []builder.Option{
		builder.WithLogger(log.With(logger.String("component", "builder"))),
		builder.WithRecorder(m),
	}

	closeFn := noop
	if cfg.Redis.Address != "" {
		rc, err := cache.NewClient(cache.Config{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("content cache disabled", logger.Error(err))
		} else {
			opts = append(opts, builder.WithCache(cache.NewRedis(rc)))
			closeFn = func() { _ = rc.Close() }
		}
	}

	client, err := builder.NewClient(builder.Config{
		APIKey:  cfg.Builder.APIKey,
		BaseURL: cfg.Builder.BaseURL,
		Timeout: cfg.Builder.Timeout,
	}, opts...)
	if err != nil {
		closeFn()
		return nil, noop, fmt.Errorf("failed to create content client: %w", err)
	}

	return client, closeFn, nil
}
