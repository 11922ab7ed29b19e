package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/database"
	apperrors "storefront-service/errors"
	"storefront-service/kafka"
	"storefront-service/logger"
	"storefront-service/middleware"
	"storefront-service/repository"
	"storefront-service/routes"
	"storefront-service/services"
	"storefront-service/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.Initialize(cfg.Env)
	if err != nil {
		panic(err.Error())
	}
	defer log.Sync()

	// --- Storage ---
	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Store connection failed", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	repo := repository.NewStateRepository(store, log)

	// --- Kafka (optional) ---
	opts := services.Options{
		MockLogin: cfg.MockLoginEnabled,
		Catalog:   services.DefaultCatalog(),
		Views:     views.ForPage(log),
	}
	var producer *kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		opts.Publisher = producer
	} else {
		log.Warn("KAFKA_BROKERS not set, order events will not be published")
	}

	// --- Dependency injection ---
	storefrontService := services.NewStorefrontService(repo, opts, log)
	storefrontController := controllers.NewStorefrontController(storefrontService)

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute))
	r.Use(middleware.TimeoutMiddleware(cfg.RequestTimeout))
	r.Use(apperrors.ErrorMiddleware())

	routes.RegisterStorefrontRoutes(r, storefrontController, cfg.Env == "production")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "storefront-service", "store": cfg.StoreBackend})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info("Storefront Service started",
			zap.String("port", cfg.Port),
			zap.String("store", cfg.StoreBackend),
			zap.Bool("mock_login", cfg.MockLoginEnabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Initiating graceful shutdown...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("Kafka producer close error", zap.Error(err))
		}
	}
	if err := closeStore(); err != nil {
		log.Error("Store close error", zap.Error(err))
	}

	log.Info("Storefront Service stopped gracefully")
}

// openStore connects the configured KV backend and returns it with its
// close function.
func openStore(cfg config.Config, log *zap.Logger) (database.KVStore, func() error, error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		db, err := database.ConnectPostgres(cfg.PostgresDSN())
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		log.Info("Connected to Postgres", zap.String("host", cfg.PostgresHost))
		return database.NewPostgresStore(db), sqlDB.Close, nil

	case config.StoreMemory:
		log.Warn("Using in-memory store, records are lost on restart")
		return database.NewMemoryStore(), func() error { return nil }, nil

	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Connected to Redis", zap.Duration("record_ttl", cfg.RecordTTL))
		return database.NewRedisStore(client, cfg.RecordTTL), client.Close, nil
	}
}
