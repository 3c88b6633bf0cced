package main

import (
	"context"
	"net/http"

	orderviewapp "github.com/blindtreasure/orderview/application/orderview"
	"github.com/blindtreasure/orderview/catalog"
	"github.com/blindtreasure/orderview/cmd/config"
	redisclient "github.com/blindtreasure/orderview/cmd/redis"
	backendRepo "github.com/blindtreasure/orderview/repository/backend"
	cacheRepo "github.com/blindtreasure/orderview/repository/cache"
	"github.com/blindtreasure/orderview/thirdparty/rabbitmq"
	"github.com/blindtreasure/orderview/timeline"
	"github.com/blindtreasure/orderview/transport"
	"github.com/blindtreasure/orderview/utils/logger"
	validatorx "github.com/blindtreasure/orderview/utils/validator"
	"go.uber.org/zap"
)

// @title BlindTreasure Order View API
// @version 1.0
// @description Order reconciliation and tracking BFF for the BlindTreasure storefront
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting order view service", zap.String("env", cfg.Environment))

	if err := validatorx.ValidateStruct(cfg); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	// Redis is optional; without it every request recomputes the view
	if cfg.Redis.Host != "" {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	} else {
		logger.Warn("redis not configured, bucket caching disabled")
	}

	// Initialize repositories
	BackendRepo := backendRepo.NewBackendRepository(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	CacheRepo := cacheRepo.NewCacheRepository()

	// Initialize application layer
	OrderViewApp := orderviewapp.NewOrderViewApp(cfg, BackendRepo, CacheRepo, catalog.Default(), timeline.NewBuilder())

	// Cache invalidation consumer for upstream order events
	if cfg.RabbitMQ.Enabled {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, CacheRepo)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(context.Background()); err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
	}

	httpTransport := transport.NewTransport(cfg, OrderViewApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
