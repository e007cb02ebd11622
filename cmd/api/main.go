package main

import (
	"log"

	"storefront/internal/analytics"
	"storefront/internal/api"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/logger"
	"storefront/internal/loyalty"
	"storefront/internal/orders"
	"storefront/internal/pricing"
	"storefront/internal/reviews"
	"storefront/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize database-backed storage
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	store := storage.NewGorm(db.DB)

	// Analytics tracker: Kafka when brokers are configured, no-op otherwise
	var tracker analytics.Tracker = analytics.Nop{}
	if cfg.KafkaBrokers != "" {
		tracker = analytics.NewKafka(cfg.KafkaBrokers, cfg.EventsTopic, logger)
	}

	// Content and stores
	content := catalog.Default()
	orderStore := orders.New(store, logger, tracker)
	reviewStore := reviews.New(store, orderStore, logger, tracker)

	// Initialize API server
	server := api.New(cfg, logger, api.Stores{
		Catalog: content,
		Pricer:  pricing.New(content),
		Orders:  orderStore,
		Reviews: reviewStore,
		Loyalty: loyalty.New(orderStore),
	})

	// Start server
	logger.Info("Starting API server on port " + cfg.APIPort)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
