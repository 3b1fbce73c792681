package main

import (
	"Trivio/backend/go/internal/config"
	"Trivio/backend/go/internal/database/kafka"
	"Trivio/backend/go/internal/database/mysql"
	"Trivio/backend/go/internal/database/redis"
	"Trivio/backend/go/internal/fact_service/api"
	"Trivio/backend/go/internal/fact_service/service"
	"Trivio/backend/go/internal/fact_service/store"
	"Trivio/backend/go/internal/models"
	httpserver "Trivio/backend/go/pkg/http"
	"Trivio/backend/go/pkg/logger"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.Init(level)
	appLogger := logger.New("fact_service", "", "")

	appLogger.Info("Logger initialized")

	// Initialize database connection
	db, err := mysql.GetDB(&cfg.Databases.MySQL)
	if err != nil {
		appLogger.Fatal(err.Error())
	}
	appLogger.Info("Database connection established")

	// Auto-migrate database schema
	err = db.AutoMigrate(&models.User{}, &models.Topic{}, &models.Fact{}, &models.FactRequest{}, &models.UserFactState{})
	if err != nil {
		appLogger.Fatal(err.Error())
	}
	appLogger.Info("Database migration completed")

	// Redis 是可选的：未配置时注销不做令牌吊销
	redisCli := optionalRedis(cfg, appLogger)

	// Kafka 是可选的：未配置时生成请求只落库，不投递事件
	publisher := optionalPublisher(cfg, appLogger)

	// Initialize dependencies (Store -> Service -> Handler)
	factStore := store.NewStore(db)
	tokenTTL := time.Duration(cfg.Auth.TokenTTL) * time.Second
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	factService := service.NewService(factStore, cfg.Auth.JwtSecret, tokenTTL, redisCli, publisher, appLogger)
	apiHandler := api.NewHandler(factService, appLogger)
	appLogger.Info("Dependencies injected")

	// Setup Gin router and mount it into the middleware-aware server
	router := api.SetupRouter(apiHandler, cfg.Auth.JwtSecret, factService)
	appLogger.Info("Router setup completed")

	srv, err := httpserver.NewServer(cfg,
		httpserver.WithAddress(cfg.Server.Address),
		httpserver.WithHandler(router),
	)
	if err != nil {
		appLogger.Fatal(err.Error())
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal(err.Error())
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error(err.Error())
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			appLogger.Error(err.Error())
		}
	}
	if err := mysql.Close(); err != nil {
		appLogger.Error(err.Error())
	}
	if err := redis.Close(); err != nil {
		appLogger.Error(err.Error())
	}
	appLogger.Info("Server stopped")
}

// optionalRedis 在配置了地址时连接 Redis，否则返回 nil。
func optionalRedis(cfg *config.AppConfig, appLogger *logger.Logger) *goredis.Client {
	if cfg.Databases.Redis.Address == "" {
		appLogger.Warn("未配置 Redis，注销将不做令牌吊销")
		return nil
	}
	cli, err := redis.GetClient(&cfg.Databases.Redis)
	if err != nil {
		appLogger.Fatal(err.Error())
	}
	return cli
}

// optionalPublisher 在配置了 broker 时初始化 Kafka 发布器，否则返回 nil。
func optionalPublisher(cfg *config.AppConfig, appLogger *logger.Logger) *kafka.RequestPublisher {
	if len(cfg.Databases.Kafka.Brokers) == 0 {
		appLogger.Warn("未配置 Kafka，生成请求只落库不投递事件")
		return nil
	}
	client, err := kafka.GetClient(&cfg.Databases.Kafka)
	if err != nil {
		appLogger.Fatal(err.Error())
	}
	return kafka.NewRequestPublisher(client)
}
