package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ghost-mann/binance-ingest/internal/api"
	"github.com/ghost-mann/binance-ingest/internal/config"
	"github.com/ghost-mann/binance-ingest/internal/database"
	"github.com/ghost-mann/binance-ingest/internal/pipeline"
	"github.com/ghost-mann/binance-ingest/internal/version"
	"github.com/ghost-mann/binance-ingest/internal/writer"
)

func main() {
	configPath := flag.String("config", "configs/ingestor.yaml", "path to config file")
	once := flag.Bool("once", false, "run one cycle and exit, ignoring poller.interval")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting ingestor",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Pull DB credentials and overrides from .env when present.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"symbols", len(cfg.Symbols),
		"interval", cfg.Poller.Interval,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create API client
	apiClient := api.NewClient(
		cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, time.Second),
	)

	// Assemble the pipeline
	store := writer.New(pool, logger)
	pipe := pipeline.New(pipeline.Config{
		TradeLimit:    cfg.Pipeline.TradeLimit,
		DepthLimit:    cfg.Pipeline.DepthLimit,
		KlineInterval: cfg.Pipeline.KlineInterval,
		KlineLimit:    cfg.Pipeline.KlineLimit,
		Concurrency:   cfg.Pipeline.Concurrency,
		Timeout:       cfg.Pipeline.PairTimeout,
	}, apiClient, store, logger)

	// Health and metrics server
	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: createHealthHandler(cfg, pool),
	}

	go func() {
		logger.Info("starting health server", "port", cfg.Metrics.Port)
		if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("health server error", "error", err)
		}
	}()

	// One cycle on start, matching the single-shot origin of this job.
	runCycle(ctx, logger, pipe, cfg.Symbols)

	if !*once && cfg.Poller.Interval > 0 {
		ticker := time.NewTicker(cfg.Poller.Interval)
		defer ticker.Stop()

	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case <-ticker.C:
				runCycle(ctx, logger, pipe, cfg.Symbols)
			}
		}
	}

	logger.Info("shutting down...")

	// Graceful shutdown of health server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	healthServer.Shutdown(shutdownCtx)

	logger.Info("ingestor stopped")
}

// runCycle executes one poll cycle and logs per-pair failures.
func runCycle(ctx context.Context, logger *slog.Logger, pipe *pipeline.Pipeline, symbols []string) {
	if ctx.Err() != nil {
		return
	}

	outcomes := pipe.RunCycle(ctx, symbols)

	for _, o := range outcomes {
		if o.Failed() {
			logger.Error("endpoint failed",
				"symbol", o.Symbol,
				"endpoint", o.Endpoint,
				"stage", o.Stage,
				"error", o.Err,
			)
		}
	}
}

// createHealthHandler creates the HTTP handler for health checks and metrics.
func createHealthHandler(cfg *config.Config, pool *pgxpool.Pool) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(cfg.Metrics.Path, promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string                 `json:"status"`
			Components map[string]interface{} `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]interface{}),
		}

		// Check database
		if err := pool.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["postgres"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["postgres"] = "connected"
		}

		health.Components["symbols"] = len(cfg.Symbols)

		// Set response
		w.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	return mux
}
