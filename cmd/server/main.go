// cmd/server/main.go
// Entry point for the Cinna GraphRAG backend.
// The cmd/ folder holds executable binaries and internal/ holds the packages
// they are built from — the standard Go project layout.
package main

import (
	// fiber is a fast HTTP web framework inspired by Express.js
	"github.com/gofiber/fiber/v2"
	// adaptor bridges net/http handlers (like the Prometheus one) into Fiber
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	// cors allows the frontend to call the API from a different origin
	"github.com/gofiber/fiber/v2/middleware/cors"
	// logger prints request details (method, path, status, duration) to stdout
	"github.com/gofiber/fiber/v2/middleware/logger"
	// recover turns handler panics into 500 responses instead of crashing the process
	"github.com/gofiber/fiber/v2/middleware/recover"
	// promhttp serves the Prometheus text exposition format
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cinna/cinna-graphrag/internal/config"
	"github.com/cinna/cinna-graphrag/internal/handlers"
	"github.com/cinna/cinna-graphrag/internal/logging"
	"github.com/cinna/cinna-graphrag/internal/middleware"
)

func main() {
	// Load configuration from environment variables (and optionally a .env file).
	cfg := config.Load()

	// Structured logger for application-level events. Request logging is
	// handled separately by the Fiber logger middleware below.
	log := logging.New(cfg.LogLevel)

	// Create the Fiber app (our HTTP server).
	app := fiber.New(fiber.Config{
		AppName: "Cinna GraphRAG Backend",
	})

	// --- Global middleware ---
	// These run on every request, in registration order.
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New())
	// Open CORS for development; lock this down to the frontend's domain in production.
	app.Use(cors.New())
	app.Use(middleware.Metrics())

	// --- Routes ---
	// GET / is the liveness check: a fixed status payload, no inputs.
	app.Get("/", handlers.Root)
	// POST /recommendations takes the user's genres and returns movie
	// recommendations. See internal/handlers/recommendations.go for the
	// current state of the retrieval pipeline.
	app.Post("/recommendations", handlers.Recommendations)
	// GET /metrics exposes the Prometheus collectors for scraping.
	// promhttp is a net/http handler, so it goes through the adaptor.
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Start listening for HTTP connections on the configured port.
	// ":" + cfg.Port produces a string like ":8080" — all interfaces.
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
