// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"pingo/internal/config"
	"pingo/internal/gateway"
	"pingo/internal/middleware"
	"pingo/internal/queue"
	"pingo/internal/repositories"
	"pingo/internal/routes"
	"pingo/internal/services/notification"
	"pingo/internal/telemetry"
)

func main() {
	config.LoadEnv()
	telemetry.InitLogger("pingo")

	db, err := repositories.InitDB()
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Warn("failed to close database connection", "error", err)
			}
		}
	}()

	redisClient := repositories.NewRedisClient()
	cache := repositories.NewRedisCache(redisClient)
	defer func() {
		if err := cache.Close(); err != nil {
			slog.Warn("failed to close redis connection", "error", err)
		}
	}()

	events := queue.New(config.GetEnv("NATS_URL", "nats://localhost:4222"))
	if err := events.Connect(); err != nil {
		slog.Error("failed to connect to nats", "error", err)
		os.Exit(1)
	}
	defer events.Close()

	// The notification consumer runs in-process. Transfers survive a
	// notifier outage because unacknowledged deliveries are redelivered.
	notifier := gateway.NewHTTPTransferNotifier(
		config.GetEnv("NOTIFIER_URL", "https://util.devi.tools/api/v1/notify"),
		config.GetDurationEnv("NOTIFIER_TIMEOUT", 5*time.Second),
	)
	consumer := notification.NewService(events, notifier)
	if err := consumer.Start(context.Background()); err != nil {
		slog.Error("failed to start notification consumer", "error", err)
		os.Exit(1)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/transfer", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("TRANSFER_RATE_LIMIT", 100),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	app.Use(middleware.Metrics())

	routes.SetupRoutes(app, db, cache, events)

	addr := ":" + config.GetEnv("PORT", "3000")
	slog.Info("server listening", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
