package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/partscout/backend/config"
	httpDelivery "github.com/partscout/backend/internal/delivery/http"
	"github.com/partscout/backend/internal/domain"
	"github.com/partscout/backend/internal/infrastructure/cache"
	"github.com/partscout/backend/internal/infrastructure/metrics"
	"github.com/partscout/backend/internal/infrastructure/microcenter"
	"github.com/partscout/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PartScout Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	var productCache domain.CacheRepository
	if cfg.Cache.Enabled {
		memoryCache := cache.NewMemoryCache()
		defer memoryCache.Close()
		productCache = memoryCache
		log.Printf("Cache TTL: %s", cfg.Cache.TTL)
	} else {
		log.Printf("Cache disabled")
	}

	registry := metrics.NewRegistry()

	client, err := microcenter.NewClient(microcenter.ClientOptions{
		BaseURL:           cfg.Retailer.BaseURL,
		UserAgent:         cfg.Retailer.UserAgent,
		Timeout:           cfg.Retailer.Timeout,
		RequestsPerSecond: cfg.Retailer.RequestsPerSecond,
		Burst:             cfg.Retailer.Burst,
	})
	if err != nil {
		log.Fatalf("Failed to create retailer client: %v", err)
	}

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" || cfg.Lookup.Debug {
		client.SetDebug(true)
		log.Printf("Retailer client debug mode enabled")
	}

	log.Printf("Retailer: %s (store %s, %.1f req/s, burst %d)",
		cfg.Retailer.BaseURL,
		cfg.Retailer.DefaultStoreID,
		cfg.Retailer.RequestsPerSecond,
		cfg.Retailer.Burst)

	// Initialize usecase layer
	resolver := usecase.NewResolver(client, usecase.ResolverConfig{
		ImageBaseURL:       cfg.Retailer.ImageBaseURL,
		EnableDebugLogging: cfg.Lookup.Debug,
	})
	lookupService := usecase.NewLookupService(
		productCache,
		resolver,
		registry,
		usecase.LookupServiceConfig{
			CacheTTL:       cfg.Cache.TTL,
			DefaultStoreID: cfg.Retailer.DefaultStoreID,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(lookupService, registry.Handler())

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
