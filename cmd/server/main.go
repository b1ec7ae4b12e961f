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

	"levelgen.dev/internal/config"
	"levelgen.dev/internal/handlers"
	"levelgen.dev/internal/persistence/indexdb"
	"levelgen.dev/internal/services"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	index, err := indexdb.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Error("open level index", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer index.Close()

	levelService := services.NewLevelService(cfg.DataPath, cfg.Tuning, index, log)
	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(levelService, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("server listening", "addr", cfg.ServerAddr, "data", cfg.DataPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
