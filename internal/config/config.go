package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers string
	EventsTopic  string

	// API Configuration
	APIPort string
	APIHost string

	// Storefront
	BaseCurrency       string
	GiftBoxMinProducts int
	GiftBoxMaxProducts int

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		DatabaseURL:        getEnv("DATABASE_URL", "sqlite://storefront.db"),
		KafkaBrokers:       getEnv("KAFKA_BROKERS", ""),
		EventsTopic:        getEnv("EVENTS_TOPIC", "storefront-events"),
		APIPort:            getEnv("API_PORT", "8080"),
		APIHost:            getEnv("API_HOST", "0.0.0.0"),
		BaseCurrency:       getEnv("BASE_CURRENCY", "EGP"),
		GiftBoxMinProducts: getEnvAsInt("GIFT_BOX_MIN_PRODUCTS", 2),
		GiftBoxMaxProducts: getEnvAsInt("GIFT_BOX_MAX_PRODUCTS", 6),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
