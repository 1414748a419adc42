// Package main is the entry point for the trip planner service.
//
//	@title			Trip Planner API
//	@version		1.0.0
//	@description	Plans a round trip from a free-text description: flights with the fewest legs per direction and a daily weather summary for the destination.
//
//	@contact.name	API Support
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
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

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/trip-planner/trip-planner-service/docs"

	// Application layers
	triphttp "github.com/trip-planner/trip-planner-service/internal/adapter/http"
	"github.com/trip-planner/trip-planner-service/internal/adapter/http/middleware"
	"github.com/trip-planner/trip-planner-service/internal/adapter/provider/amadeus"
	"github.com/trip-planner/trip-planner-service/internal/adapter/provider/openai"
	"github.com/trip-planner/trip-planner-service/internal/adapter/provider/openweather"
	"github.com/trip-planner/trip-planner-service/internal/config"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/retry"
	"github.com/trip-planner/trip-planner-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging)
	log.Info().
		Str("env", cfg.App.Env).
		Str("planner_mode", cfg.App.PlannerMode).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)
	e.Use(middleware.Deadline(cfg.Server.RequestTimeout))

	setupRoutes(e, cfg, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes builds the planner for the configured mode and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log zerolog.Logger) {
	planner := newPlanner(cfg, log)

	handler := triphttp.NewTripHandler(planner, log)
	triphttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// newPlanner wires the provider adapters into the selected TripPlanner.
func newPlanner(cfg *config.Config, log zerolog.Logger) usecase.TripPlanner {
	model := openai.NewAdapter(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: cfg.Providers.HTTPTimeout,
	})

	opts := []usecase.Option{
		usecase.WithRetryConfig(retry.FixedConfig(cfg.Extraction.MaxAttempts, cfg.Extraction.RetryDelay)),
		usecase.WithLogger(log),
	}

	if cfg.App.PlannerMode == config.PlannerModeModel {
		return usecase.NewModelPlanner(model, opts...)
	}

	flights := amadeus.NewClient(amadeus.Config{
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		BaseURL:      cfg.Amadeus.BaseURL,
		Timeout:      cfg.Providers.HTTPTimeout,
	}, log)

	weather := openweather.NewAdapter(openweather.Config{
		APIKey:  cfg.OpenWeather.APIKey,
		BaseURL: cfg.OpenWeather.BaseURL,
		Timeout: cfg.Providers.HTTPTimeout,
	}, log)

	return usecase.NewPipelinePlanner(usecase.Dependencies{
		Model:     model,
		Resolver:  flights,
		Describer: flights,
		Flights:   flights,
		Weather:   weather,
		Extractor: usecase.NewModelTripExtractor(model, opts...),
		Logger:    log,
	})
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
