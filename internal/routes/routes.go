// Package routes defines the API routing configuration.
// It wires repositories, gateways and services together and binds
// them to their HTTP endpoints.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pingo/internal/config"
	"pingo/internal/gateway"
	"pingo/internal/handlers"
	"pingo/internal/queue"
	"pingo/internal/repositories"
	"pingo/internal/services/history"
	"pingo/internal/services/transfer"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, cache *repositories.RedisCache, events *queue.EventQueue) {
	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)
	transactionReader := repositories.NewTransactionReader(db)
	walletGateway := repositories.NewWalletGateway(db)
	userRepo := repositories.NewUserRepository(db)

	// Outbound gateways
	authorizer := gateway.NewHTTPAuthorizer(
		config.GetEnv("AUTHORIZER_URL", "https://util.devi.tools/api/v2/authorize"),
		config.GetDurationEnv("AUTHORIZER_TIMEOUT", 5*time.Second),
	)

	// Services
	transferService := transfer.NewService(transactionRepo, walletGateway, authorizer, events)
	historyService := history.NewService(
		transactionReader,
		userRepo,
		cache,
		config.GetDurationEnv("HISTORY_CACHE_TTL", 24*time.Hour),
	)

	transferHandler := handlers.NewTransferHandler(transferService)
	transactionHandler := handlers.NewTransactionHandler(historyService)

	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", handlers.Metrics())

	app.Post("/transfer", transferHandler.Transfer)
	app.Get("/transactions/customers/:customerId", transactionHandler.ListByCustomer)
}
