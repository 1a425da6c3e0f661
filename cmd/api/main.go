package main

import (
	"context"
	"crimson-store/internal/client"
	"crimson-store/internal/config"
	"crimson-store/internal/repository"
	"crimson-store/internal/server"
	"crimson-store/internal/service"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	kv, err := newKVStore(cfg.Storage)
	if err != nil {
		logger.Error("init storage", slog.Any("error", err))
		os.Exit(1)
	}

	storeService := service.NewStoreService(
		service.StoreOptions{
			Name:          cfg.Store.Name,
			DiscordURL:    cfg.Store.DiscordURL,
			AdminPassword: cfg.Admin.Password,
		},
		logger,
		repository.NewCatalogRepository(),
		repository.NewOrderRepository(kv),
		repository.NewProfileRepository(kv),
		repository.NewSessionRepository(kv),
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(storeService)

	logger.Info("starting HTTP server",
		slog.String("addr", serverAddr),
		slog.String("environment", cfg.Environment.Name),
		slog.String("storage", cfg.Storage.Driver),
	)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", slog.Any("error", err))
	}
}

func newKVStore(cfg config.Storage) (repository.KVStore, error) {
	switch cfg.Driver {
	case "memory":
		return repository.NewMemoryKVStore(), nil
	case "sqlite":
		db, err := client.InitSqliteClient(cfg.Path)
		if err != nil {
			return nil, err
		}
		return repository.NewGormKVStore(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
