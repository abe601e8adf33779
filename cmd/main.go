package main

import (
	"context"
	"os"
	"time"

	"cart_service/config"
	"cart_service/internal/clients"
	"cart_service/internal/delivery"
	"cart_service/internal/notifier"
	"cart_service/internal/storage"
	"cart_service/internal/usecase"
	"cart_service/pkg/db"
	"cart_service/pkg/redisdb"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting Cart Service...")
	logger.Infof("Log level set to: %s", logLevel.String())

	ctx := context.Background()

	var snapshots storage.SnapshotStore
	switch cfg.StorageBackend {
	case "redis":
		redisClient, err := redisdb.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatalf("FATAL: Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		snapshots = storage.NewRedisStore(redisClient, logger)
		logger.Info("Redis snapshot store initialized.")
	case "postgres":
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("FATAL: Failed to connect to database: %v", err)
		}
		defer database.Close()
		snapshots = storage.NewPostgresStore(database, logger)
		logger.Info("Postgres snapshot store initialized.")
	default:
		snapshots = storage.NewMemoryStore()
		logger.Warn("Using in-memory snapshot store, the cart will not survive restarts.")
	}

	clientTimeout := time.Duration(cfg.ClientTimeoutSec) * time.Second
	stockClient := clients.NewStockHTTPClient(cfg.StockServiceURL, clientTimeout, logger)
	catalogClient := clients.NewCatalogHTTPClient(cfg.CatalogServiceURL, clientTimeout, logger)
	logger.Infof("Stock client initialized for target: %s", cfg.StockServiceURL)
	logger.Infof("Catalog client initialized for target: %s", cfg.CatalogServiceURL)

	notify := notifier.NewLogNotifier(logger)

	// --- Dependency Injection ---
	cartUseCase := usecase.NewCartUseCase(ctx, snapshots, stockClient, catalogClient, notify, logger, cfg.CartKey)
	logger.Info("Use cases initialized.")
	cartHandler := delivery.NewCartHandler(cartUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.Default()
	router.RedirectTrailingSlash = false

	cartHandler.RegisterRoutes(router)
	logger.Info("Routes registered.")

	// --- Start Server ---
	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
