/*
main.go - Application entry point

STARTUP SEQUENCE:
  1. Load configuration (environment / .env)
  2. Open the SQLite snapshot store; seed a demo scenario on first run
  3. Load the snapshot into the in-memory collections
  4. Select the projection cache backend
  5. Start the HTTP server with graceful shutdown

ENVIRONMENT:
  PORT           HTTP port (default 8080)
  DB_PATH        SQLite path; ":memory:" for ephemeral runs
  CACHE_BACKEND  memory | redis | none
  CACHE_SIZE     LRU entry cap (memory backend)
  CACHE_TTL      cache entry lifetime, e.g. "5m"
  REDIS_ADDR     host:port (redis backend)
  LOG_LEVEL      debug | info | warn | error
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/projection-engine/api"
	"github.com/warp/projection-engine/applog"
	"github.com/warp/projection-engine/cache"
	"github.com/warp/projection-engine/config"
	"github.com/warp/projection-engine/store"
	"github.com/warp/projection-engine/store/sqlite"
)

func main() {
	cfg := config.Load()
	logger := applog.New(cfg.LogLevel, "server")

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	empty, err := db.IsEmpty(ctx)
	if err != nil {
		logger.Error("failed to inspect database", "error", err)
		os.Exit(1)
	}
	if empty {
		scenario := api.DefaultScenario()
		if err := db.SaveSnapshot(ctx, scenario.Build()); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
		logger.Info("seeded demo scenario", "scenario", scenario.ID)
	}

	snap, err := db.LoadSnapshot(ctx)
	if err != nil {
		logger.Error("failed to load collections", "error", err)
		os.Exit(1)
	}

	repo := store.NewMemory()
	repo.Replace(snap)
	logger.Info("collections loaded",
		"employees", len(snap.Employees),
		"adjustments", len(snap.Adjustments),
		"payments", len(snap.Payments),
		"debts", len(snap.Debts))

	projCache := newCache(cfg, logger)

	handler := api.NewHandler(repo, db, projCache, logger.WithComponent("api"))
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", "http://localhost:"+cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newCache selects the projection cache backend. A failing Redis is a
// startup error: silently losing the shared cache defeats its point.
func newCache(cfg *config.Config, logger *applog.Logger) cache.ProjectionCache {
	switch cfg.CacheBackend {
	case "redis":
		rc := cache.NewRedis(cfg.RedisAddr, cfg.CacheTTL)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			logger.Error("redis unreachable", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		return rc
	case "none":
		return cache.Noop{}
	default:
		return cache.NewMemory(cfg.CacheSize, cfg.CacheTTL)
	}
}
