package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/ardyware/ledger/config"
	"github.com/ardyware/ledger/internal/api"
	"github.com/ardyware/ledger/internal/service"
	"github.com/ardyware/ledger/internal/storage"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (items directory + trades ledger).
//   - Creates the ledger service and the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Repository layer: the item directory and the trade ledger share one
	// connection pool but own separate relations.
	items := storage.NewItemsRepository(db)
	trades := storage.NewTradesRepository(db)

	// Service layer (business logic)
	svc := service.NewLedgerService(items, trades)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
