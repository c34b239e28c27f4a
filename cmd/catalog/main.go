package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-catalog/internal/config"
	"product-catalog/internal/handler"
	"product-catalog/internal/metrics"
	"product-catalog/internal/model"
	"product-catalog/internal/repository"
	"product-catalog/internal/router"
	"product-catalog/internal/service"
	"product-catalog/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting product catalog")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	productsURL, err := cfg.Catalog.ProductsURL()
	if err != nil {
		return fmt.Errorf("failed to build products URL: %w", err)
	}

	// Stores live for the lifetime of the process
	products := store.NewProductStore()
	pageConfig := store.NewPageConfigStore()
	pageConfig.Update(func(pc model.PageConfig) model.PageConfig {
		pc.PageSize = cfg.Pagination.PageSize
		return pc
	})

	unsubscribe := products.Subscribe(func(p []model.Product) {
		metrics.ProductsLoaded.Set(float64(len(p)))
		logger.Info().Int("count", len(p)).Msg("product catalogue updated")
	})
	defer unsubscribe()

	productRepo := repository.NewProductRepository(&http.Client{}, productsURL, logger)
	productService := service.NewProductService(productRepo, products, pageConfig, logger)

	// A failed initial load is not fatal; clients can retry via the refresh endpoint
	if _, err := productService.FetchAllProducts(ctx); err != nil {
		logger.Warn().
			Err(err).
			Str("url", productsURL).
			Msg("initial product fetch failed, starting with an empty catalogue")
	}

	productHandler := handler.NewProductHandler(productService, logger)
	pageConfigHandler := handler.NewPageConfigHandler(productService, logger)

	mux := router.New(productHandler, pageConfigHandler, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("upstream", productsURL).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
