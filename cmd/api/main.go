package main

// @title Routes Microservice API
// @version 1.0.0
// @description Микросервис планирования туристических маршрутов по Эквадору. Строит наземные и авиамаршруты от города отправления до туристического направления, сверяет оценочные цены с живым каталогом услуг и отдаёт каталог транспортных узлов страны.
// @description
// @description Основные возможности:
// @description - Планирование маршрутов: рекомендуемый наземный и авиаальтернатива при заметном выигрыше во времени
// @description - Сверка оценочных цен сегментов с актуальными ценами транспортных услуг
// @description - Фильтрация маршрутов для островных направлений (только с авиасегментом)
// @description - Каталог транспортных узлов (терминалы, аэропорты, морские порты)
// @description - Каталог активных направлений и транспортных услуг

// @contact.name API Support
// @contact.email support@routes-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/routes-microservice/docs"
	"github.com/routes-microservice/internal/config"
	httpDelivery "github.com/routes-microservice/internal/delivery/http"
	"github.com/routes-microservice/internal/delivery/http/handler"
	"github.com/routes-microservice/internal/pkg/logger"
	"github.com/routes-microservice/internal/repository/cache"
	"github.com/routes-microservice/internal/repository/fixture"
	"github.com/routes-microservice/internal/repository/postgres"
	"github.com/routes-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Routes Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load transport hub catalog (static fixture, validated at startup)
	hubRepo, err := fixture.NewHubRepository(cfg.Catalog.HubDataPath, log)
	if err != nil {
		log.Fatal("Failed to load transport hub catalog",
			zap.String("path", cfg.Catalog.HubDataPath),
			zap.Error(err))
	}

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize Repositories
	destinationRepo := postgres.NewDestinationRepository(db)
	priceRepo := postgres.NewPriceRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 8. Initialize Use Cases
	plannerUC := usecase.NewRoutePlannerUseCase(
		hubRepo,
		destinationRepo,
		priceRepo,
		cacheRepo,
		log,
		cfg.Cache.PlanCacheTTL,
	)

	hubUC := usecase.NewHubUseCase(hubRepo, log)

	catalogUC := usecase.NewCatalogUseCase(
		destinationRepo,
		priceRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	plannerHandler := handler.NewPlannerHandler(plannerUC, log)
	hubHandler := handler.NewHubHandler(hubUC, log)
	catalogHandler := handler.NewCatalogHandler(catalogUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		plannerHandler,
		hubHandler,
		catalogHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
