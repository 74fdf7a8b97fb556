package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// WordPress / WooCommerce REST API
	WordPressAPIURL         string
	WordPressConsumerKey    string
	WordPressConsumerSecret string
	WebhookSecret           string

	// Kafka
	KafkaBrokers      []string
	ProductEventTopic string
	SyncRequestTopic  string

	// Catalog sync
	SyncSchedule string
	SyncPageSize int

	// API Configuration
	APIPort            string
	APIHost            string
	CORSAllowedOrigins []string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file, if any
	godotenv.Load()

	return &Config{
		WordPressAPIURL:         getEnv("WORDPRESS_API_URL", ""),
		WordPressConsumerKey:    getEnv("WORDPRESS_CONSUMER_KEY", ""),
		WordPressConsumerSecret: getEnv("WORDPRESS_CONSUMER_SECRET", ""),
		WebhookSecret:           getEnv("WOOCOMMERCE_WEBHOOK_SECRET", ""),
		KafkaBrokers:            getEnvAsList("KAFKA_BROKERS", "localhost:9092"),
		ProductEventTopic:       getEnv("KAFKA_PRODUCT_TOPIC", "product-events"),
		SyncRequestTopic:        getEnv("KAFKA_SYNC_TOPIC", "catalog-sync-requests"),
		SyncSchedule:            getEnv("SYNC_SCHEDULE", "@every 1h"),
		SyncPageSize:            getEnvAsInt("SYNC_PAGE_SIZE", 50),
		APIPort:                 getEnv("API_PORT", "8080"),
		APIHost:                 getEnv("API_HOST", "0.0.0.0"),
		CORSAllowedOrigins:      getEnvAsList("CORS_ALLOWED_ORIGINS", "*"),
		Env:                     getEnv("ENV", "development"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
	}, nil
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
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

func getEnvAsList(key, defaultValue string) []string {
	var list []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
