// Command etod runs the ETo computation service: station scraping,
// formula evaluation, and the HTTP API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/agroclim/eto-service/internal/adapter/csvlog"
	"github.com/agroclim/eto-service/internal/adapter/httpapi"
	"github.com/agroclim/eto-service/internal/adapter/meteo"
	"github.com/agroclim/eto-service/internal/config"
	"github.com/agroclim/eto-service/internal/observability"
	"github.com/agroclim/eto-service/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	var fetcher pipeline.Fetcher = meteo.NewClient(cfg.FetchTimeout, logger)
	if cfg.CacheEnabled {
		fetcher = meteo.NewCachedFetcher(fetcher, cfg.CacheTTL, nil, metrics)
		logger.Info("snapshot cache enabled", "ttl", cfg.CacheTTL)
	}

	var resultLog pipeline.ResultLogger
	if cfg.ResultLogPath != "" {
		resultLog = csvlog.New(cfg.ResultLogPath)
		logger.Info("result log enabled", "path", cfg.ResultLogPath)
	}

	svc := pipeline.New(fetcher, map[string]string(cfg.Stations), resultLog, logger, metrics)
	srv := httpapi.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
