package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port              string `envconfig:"CART_SERVICE_PORT"  default:":8083"`
	LogLevel          string `envconfig:"LOG_LEVEL"          default:"info"`
	StockServiceURL   string `envconfig:"STOCK_SERVICE_URL"  default:"http://localhost:8081"`
	CatalogServiceURL string `envconfig:"CATALOG_SERVICE_URL" default:"http://localhost:8081"`
	ClientTimeoutSec  int    `envconfig:"CLIENT_TIMEOUT_SEC" default:"5"`

	// StorageBackend selects where the cart snapshot lives: memory, redis or
	// postgres. RedisURL / DatabaseURL only need to be set for their backend.
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"memory"`
	RedisURL       string `envconfig:"REDIS_URL"       default:"redis://localhost:6379/0"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	CartKey        string `envconfig:"CART_KEY"        default:"cart"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, LogLevel=%s, StorageBackend=%s",
			config.Port, config.LogLevel, config.StorageBackend)

		switch config.StorageBackend {
		case "memory", "redis":
		case "postgres":
			if config.DatabaseURL == "" {
				logger.Fatal("Configuration error: DATABASE_URL is required for the postgres backend")
			}
		default:
			logger.Fatalf("Configuration error: unknown STORAGE_BACKEND '%s'", config.StorageBackend)
		}
	})
	return &config
}
