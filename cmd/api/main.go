// Command api is the entry point for the library catalog HTTP API.
//
// Startup order: logger, configuration, in-memory store seed, activity
// dispatcher, router, HTTP server with graceful shutdown. No business logic
// lives here; all wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/libraryhub/catalog-api/internal/api"
	"github.com/libraryhub/catalog-api/internal/infrastructure/db/memory"
	"github.com/libraryhub/catalog-api/internal/infrastructure/queue"
	"github.com/libraryhub/catalog-api/internal/pkg/config"
	"github.com/libraryhub/catalog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Library Hub API
// @version         1.0
// @description     Single-tenant library catalog: browse books, borrow and return them, view statistics. All state is in-memory and resets on restart.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("starting library catalog api")

	// The store is the whole persistence layer: seeded at boot, gone at exit.
	store := memory.NewStore()
	store.Seed(memory.SeedCatalog())

	feed := queue.NewActivityFeed(cfg.Activity.FeedCapacity)
	dispatcher := queue.NewDispatcher(cfg.Activity.Workers, feed, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Config:   cfg,
		Store:    store,
		Activity: dispatcher,
		Feed:     feed,
		Logger:   log,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server startup error")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}

	log.Info().Msg("server stopped cleanly")
}
