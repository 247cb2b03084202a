package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeroenvanhattem/vethub/internal/adapters/storage/postgres"
	"github.com/jeroenvanhattem/vethub/internal/config"
	"github.com/jeroenvanhattem/vethub/internal/platform/logger"
	"github.com/jeroenvanhattem/vethub/internal/router"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
	slog.SetDefault(log)

	log.Info("starting vethub", slog.String("env", cfg.Env))

	var db *sql.DB
	if cfg.Database.DSN != "" {
		opened, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
		if err != nil {
			log.Error("failed to open database", logger.Err(err))
			os.Exit(1)
		}
		defer opened.Close()

		if cfg.Database.ApplySchema {
			if err := postgres.ApplySchema(context.Background(), opened); err != nil {
				log.Error("failed to apply schema", logger.Err(err))
				os.Exit(1)
			}
		}
		db = opened
		log.Info("using postgres store")
	} else {
		log.Info("using in-memory store")
	}

	srv := &http.Server{
		Addr: cfg.HTTPServer.Addr(),
		Handler: router.NewRouter(router.Options{
			DB:             db,
			Logger:         log,
			MetricsEnabled: cfg.MetricsEnabled,
		}),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server started", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", logger.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", logger.Err(err))
		return
	}
	log.Info("server stopped")
}
