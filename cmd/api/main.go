package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"game-shop/internal/catalog"
	"game-shop/internal/config"
	"game-shop/internal/database"
	"game-shop/internal/handler"
	"game-shop/internal/notify"
	"game-shop/internal/repository"
	"game-shop/internal/router"
	"game-shop/internal/service"
	"game-shop/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting game-shop API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the key-value store backend
	var kv store.Store
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		kv, err = store.NewPostgresStore(ctx, pool, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize postgres store: %w", err)
		}
	default:
		kv, err = store.NewFileStore(cfg.Store.Dir, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize file store: %w", err)
		}
		logger.Info().Str("dir", cfg.Store.Dir).Msg("using file store")
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(kv, logger)
	cartRepo := repository.NewCartRepository(kv, logger)
	orderRepo := repository.NewOrderRepository(kv, logger)
	pinRepo := repository.NewPINRepository(kv, logger)

	// Initialize the default catalogue loader
	var loader catalog.Loader
	switch cfg.Catalog.Source {
	case "s3":
		loader, err = catalog.NewS3Loader(ctx, cfg.Catalog.Bucket, cfg.Catalog.Region, cfg.Catalog.Key, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 catalog loader, falling back to local file")
			loader = catalog.NewFileLoader(cfg.Catalog.Path, logger)
		}
	case "http":
		loader = catalog.NewHTTPLoader(cfg.Catalog.URL, 10*time.Second, logger)
	default:
		loader = catalog.NewFileLoader(cfg.Catalog.Path, logger)
	}

	// Initialize the order notifier
	var notifier notify.Notifier
	if cfg.Notify.Enabled {
		notifier = notify.NewTelegram(
			cfg.Notify.Endpoint,
			cfg.Notify.BotToken,
			cfg.Notify.ChatID,
			cfg.Notify.Timeout,
			logger,
		)
	} else {
		notifier = notify.NewNop()
		logger.Info().Msg("order notifications disabled")
	}

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo, loader, logger)
	cartService := service.NewCartService(cartRepo, catalogService, logger)
	orderService := service.NewOrderService(orderRepo, cartRepo, notifier, logger)
	adminService := service.NewAdminService(pinRepo, logger)

	// Seed the admin PIN on first run
	if err := adminService.EnsurePIN(ctx, cfg.Admin.DefaultPIN); err != nil {
		return fmt.Errorf("failed to seed admin PIN: %w", err)
	}

	// Initialize handlers
	productHandler := handler.NewProductHandler(catalogService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	adminHandler := handler.NewAdminHandler(catalogService, orderService, adminService, logger)

	// Initialize router
	r := router.New(productHandler, cartHandler, orderHandler, adminHandler, adminService, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("address", cfg.Server.Address()).Msg("server listening")
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	logger.Info().Msg("server stopped")
	return nil
}
