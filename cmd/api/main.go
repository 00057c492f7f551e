// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

// Command api is the entry point for the OpenSinta HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (.env optional).
//  3. Connect to Redis when a snapshot store is configured.
//  4. Load the journal catalogue.
//  5. Watch the dataset file when enabled.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/opensinta/opensinta/internal/api"
	"github.com/opensinta/opensinta/internal/core/catalog"
	"github.com/opensinta/opensinta/internal/core/journal"
	"github.com/opensinta/opensinta/internal/platform/config"
	"github.com/opensinta/opensinta/internal/platform/constants"
	redisstore "github.com/opensinta/opensinta/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(
		slog.String(constants.FieldApp, constants.AppName),
		slog.String(constants.FieldVersion, constants.AppVersion),
	)
	slog.SetDefault(log)

	log.Info("[OpenSinta] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(
			slog.String(constants.FieldApp, constants.AppName),
			slog.String(constants.FieldVersion, constants.AppVersion),
		)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("http_source", cfg.UsesHTTPSource()),
	)

	// Root context for background workers (rate limiter cleanup, watcher).
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Redis (optional snapshot store) ────────────────────────────────
	var (
		rdb        *goredis.Client
		repository catalog.SnapshotRepository
	)
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			log.Warn("snapshot_store_disabled", slog.Any("error", err))
		} else {
			repository = catalog.NewSnapshotRepository(rdb, cfg.SnapshotTTL)
			defer func() {
				log.Info("closing_redis_client")
				if cerr := rdb.Close(); cerr != nil {
					log.Error("redis_close_error", slog.Any("error", cerr))
				}
			}()
		}
	}

	// ── 4. Catalogue ──────────────────────────────────────────────────────
	source := catalog.NewSource(cfg.DatasetURL, cfg.DatasetPath, cfg.DatasetTimeout)
	loader := catalog.NewLoader(source, repository, cfg.DatasetTimeout, log)
	defer loader.Stop()

	// A failed first load is not fatal: /ready reports it and a reload can recover.
	if _, err := loader.Reload(startupCtx); err != nil {
		log.Error("initial_catalog_load_failed", slog.Any("error", err))
	}

	// ── 5. Dataset watcher ────────────────────────────────────────────────
	if fileSource, ok := source.(*catalog.FileSource); ok && cfg.DatasetWatch {
		watcher, err := catalog.NewWatcher(fileSource.Path(), catalog.DefaultDebounce, loader, log)
		must(log, err, "create dataset watcher")
		must(log, watcher.Start(rootCtx), "start dataset watcher")
		defer watcher.Stop()
	}

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	deps := api.HealthDependencies{
		CheckCatalog: func() error {
			if !loader.Ready() {
				return errors.New("catalogue not loaded: " + loader.Status().Error)
			}
			return nil
		},
	}
	if repository != nil {
		deps.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}
	liveness, readiness := api.NewHealthHandlers(deps, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	journalService := journal.NewService(loader, cfg.PageSize, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Journal:   journal.NewHandler(journalService),
		Catalog:   catalog.NewHandler(loader),
	}

	server := api.NewServer(rootCtx, cfg, log, loader, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
