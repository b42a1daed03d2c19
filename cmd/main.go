package main

//
//  @title           ledger API
//  @version         1.0
//  @description     Personal trade ledger & profit/loss service.
//  @termsOfService  https://github.com/ardyware/ledger
//  @contact.name    API Support
//  @contact.url     https://github.com/ardyware/ledger
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        trades
//  @tag.description Recording, listing and deleting trades, plus profit/loss
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goose "github.com/pressly/goose/v3"
	"golang.org/x/sync/errgroup"

	"github.com/ardyware/ledger/config"
	_ "github.com/ardyware/ledger/docs" // swagger docs
	"github.com/ardyware/ledger/internal/app"
	"github.com/ardyware/ledger/internal/logger"
)

// newServer builds the HTTP server around the given router.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// runServer serves until an OS interrupt (SIGINT, SIGTERM) arrives, then
// shuts the server down gracefully and runs the cleanup callback.
//
// Two errgroup goroutines cooperate: one serves, one waits for a signal.
// The signal waiter shuts the server down, which unblocks the serving
// goroutine; a serve failure cancels the group context, which unblocks the
// waiter. Either way runServer returns only after cleanup has run.
func runServer(ctx context.Context, server *http.Server, cleanup func()) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-quit:
			logger.L().Info().Msg("shutting down server")
		case <-gctx.Done():
			return gctx.Err()
		}

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		cleanup()
		logger.L().Info().Msg("server exited gracefully")
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runMigrations applies all pending SQL migrations from dir.
func runMigrations(dir string) error {
	db, err := app.InitPostgres(config.AppConfig)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, dir)
}

// main is the entry point of the ledger application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API serving the trade ledger (default).
//   - migrate: Applies pending schema migrations and exits. Running it once
//     before the first api start is a precondition; the api mode does not
//     create schema on its own.
//
// Flags:
//   - --mode:       Execution mode ("api" or "migrate"). Default: "api".
//   - --migrations: Directory with goose SQL migrations. Default: "db/migrations".
//   - --port:       Port for the API server. Defaults to config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or migrate")
	migrationsDir := flag.String("migrations", "db/migrations", "Directory with goose SQL migrations")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "migrate":
		logger.L().Info().Str("dir", *migrationsDir).Msg("running migrations")
		if err := runMigrations(*migrationsDir); err != nil {
			logger.L().Fatal().Err(err).Msg("migration failed")
		}
		logger.L().Info().Msg("migrations applied successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := newServer(router, *port)
		if err := runServer(ctx, server, cleanup); err != nil {
			logger.L().Fatal().Err(err).Msg("server failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
