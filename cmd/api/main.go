package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/todo-backend/config"
	"github.com/GoSim-25-26J-441/todo-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/todo-backend/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := logging.Init("todo-backend", "info", "")
		logger.Fatal().Err(err).Msg("load config")
	}

	logger := logging.Init(cfg.App.ServiceName, cfg.App.LogLevel, cfg.App.Environment)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("open store")
	}
	defer store.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:      cfg.App.ServiceName,
		Version:          cfg.App.Version,
		StoreDriver:      store.Driver,
		Store:            store,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("store", store.Driver).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
