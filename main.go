package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"budgetbridge/config"
	httpLayer "budgetbridge/http"
	"budgetbridge/logging"
	"budgetbridge/repository"
	"budgetbridge/service"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		slog.Info("using redis cache", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	} else {
		cache = repository.NewMockCache()
		slog.Info("no REDIS_ADDR configured, using in-memory cache")
	}

	amortizationService := service.NewAmortizationService()
	sensitivityService := service.NewSensitivityService(amortizationService)

	scheduleHandler := httpLayer.NewScheduleHandler(amortizationService, cache)
	exportHandler := httpLayer.NewExportHandler(amortizationService)
	sensitivityHandler := httpLayer.NewSensitivityHandler(sensitivityService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/loan/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.CalculateSchedule),
		),
	)

	mux.Handle(
		"/loan/schedule.csv",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(exportHandler.ExportSchedule),
		),
	)

	mux.Handle(
		"/loan/sensitivity",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(sensitivityHandler.CompareRates),
		),
	)

	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpLayer.ObservabilityMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("starting server", "error", err)
		return
	case <-quit:
		slog.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server shutdown", "error", err)
	}

	slog.Info("server exited")
}
