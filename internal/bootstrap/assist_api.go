package bootstrap

import (
	"context"
	"strings"
	"time"

	"assist_server/adapter/in/http"
	"assist_server/config"
	"assist_server/infra/middleware"
	"assist_server/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodySize bounds request bodies. Email bodies reach the prompt unchanged.
const maxBodySize = 1 * 1024 * 1024

func NewAPI(ctx context.Context, cfg *config.Config) (*fiber.App, func(), error) {
	deps, err := NewDependencies(ctx, cfg)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize dependencies")
		return nil, nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		DisableStartupMessage: cfg.IsProduction(),
		AppName:               "assist-api",

		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,

		BodyLimit:          maxBodySize,
		ReadTimeout:        30 * time.Second,
		ServerHeader:       "",
		DisableDefaultDate: true,
	})

	// Global middleware stack (order matters)
	app.Use(middleware.Recover())         // 1. Panic recovery
	app.Use(middleware.RequestID())       // 2. Request ID
	app.Use(middleware.SecurityHeaders()) // 3. Security headers
	app.Use(middleware.RequestLogger())   // 4. Request logging

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins(cfg),
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,X-Request-ID",
		ExposeHeaders: "X-Request-ID,X-RateLimit-Limit,X-RateLimit-Remaining,X-RateLimit-Reset",
		MaxAge:        86400,
	}))

	http.NewHealthHandler(deps.AIService).Register(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	cleanup := func() {}

	api := app.Group("/api", middleware.RequireJSON())
	if cfg.AIRateLimitPerMin > 0 {
		limiter := middleware.NewRateLimiter(cfg.AIRateLimitPerMin, time.Minute)
		api.Use("/ai", limiter.Handler())
		cleanup = limiter.Stop
	}
	http.NewAIHandler(deps.AIService).Register(api)

	return app, cleanup, nil
}

func corsOrigins(cfg *config.Config) string {
	if origins := strings.Join(cfg.AllowedOrigins, ","); origins != "" {
		return origins
	}
	return "http://localhost:3000,http://localhost:5173"
}
