// Package main is the entry point for roomrunner.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/roomrunner/internal/game"
	"github.com/samdwyer/roomrunner/internal/gfx"
	"github.com/samdwyer/roomrunner/internal/telemetry"
	"github.com/samdwyer/roomrunner/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

// run starts the game and returns the process exit code.
// Deferred cleanup always runs before it returns, so spans and logs of a failed run are flushed.
func run(ctx context.Context) int {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		log.Printf("Note: no OTLP endpoint set, tracing disabled")
	} else if shutdown, err := telemetry.Setup(ctx); err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without tracing")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize game", zap.Error(err))
		return 1
	}

	switch cfg.Frontend {
	case game.FrontendTerminal:
		err = ui.Run(ctx, g, logger)
	default:
		err = gfx.Run(ctx, g, logger)
	}
	if err != nil {
		logger.Error("game error", zap.Error(err))
		return 1
	}
	logger.Info("game stopped", zap.Int("ticks", g.Ticks()))
	return 0
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// setupOTelEnv points the OTLP exporter at the endpoint named by our own variables.
// Standard OTEL_* variables already in the environment win.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		if endpoint := os.Getenv("ROOMRUNNER_OTLP_ENDPOINT"); endpoint != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
		}
	}

	apiKey := os.Getenv("ROOMRUNNER_OTLP_API_KEY")
	dataset := os.Getenv("ROOMRUNNER_OTLP_DATASET")
	if dataset == "" {
		dataset = "roomrunner"
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
