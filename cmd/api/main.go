package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trunghoangnt2003/memory/internal/config"
	"github.com/trunghoangnt2003/memory/internal/logger"
	"github.com/trunghoangnt2003/memory/internal/server"
	"github.com/trunghoangnt2003/memory/internal/storage/objectstore"
	"github.com/trunghoangnt2003/memory/internal/storage/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// .env is optional, environment variables may come from elsewhere
	}

	logger.Init()
	log := logger.Get()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	container, err := postgres.NewContainer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer container.Close()

	store, err := objectstore.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to initialize object storage", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.EnsureBuckets(ctx); err != nil {
		cancel()
		log.Fatal("Failed to prepare storage buckets", "error", err)
	}
	cancel()

	srv := server.New(cfg, container, store)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("Server error", "error", err)
		}
	case sig := <-quit:
		log.Info("Received shutdown signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			log.Error("Graceful shutdown failed", "error", err)
		}
	}

	log.Info("Server stopped")
}
