package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmaki/rewarddining/internal/adapters/config"
	"github.com/lmaki/rewarddining/internal/adapters/http"
	"github.com/lmaki/rewarddining/internal/adapters/http/controllers"
	"github.com/lmaki/rewarddining/internal/adapters/outbox"
	"github.com/lmaki/rewarddining/internal/adapters/postgres"
	"github.com/lmaki/rewarddining/internal/adapters/postgres/repository"
	"github.com/lmaki/rewarddining/internal/adapters/rabbitmq"
	"github.com/lmaki/rewarddining/internal/adapters/redis"
	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/logger"
	"github.com/lmaki/rewarddining/internal/core/service"
)

// @title       Reward Dining API
// @version     1.0
// @description Restaurant reward network and member account API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database connection
	pool, err := postgres.NewConnection(cfg.Postgres)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Postgres", err, nil)
	}
	defer postgres.Disconnect(pool)
	logger.Info(ctx, "Connected to Postgres", nil)

	if err := postgres.Migrate(ctx, pool); err != nil {
		logger.Fatal(ctx, "Failed to apply database schema", err, nil)
	}

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// repositories
	accountRepository := repository.NewAccountRepository(pool)
	restaurantRepository := repository.NewRestaurantRepository(pool)
	rewardRepository := repository.NewRewardRepository(pool)
	outboxRepository := repository.NewOutboxRepository(pool)
	txManager := postgres.NewTransactionManager(pool)

	// caches and rate limiter
	accountCache := redis.NewCache[domain.Account](redisClient, "account-cache")
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[domain.RewardConfirmation]](redisClient, "idempotency-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// outbox handler (uses cancellable context)
	outboxHandler := outbox.NewHandler(outboxRepository, broker, cfg.Outbox)
	go outboxHandler.Start(ctx)
	logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

	// services
	idempotencyService := service.NewIdempotencyService(idempotencyCache, 15*time.Minute, 1*time.Second, 10*time.Second)
	accountService := service.NewAccountService(accountRepository, accountCache, outboxRepository, txManager)
	restaurantService := service.NewRestaurantService(restaurantRepository)
	rewardService := service.NewRewardService(accountRepository, restaurantRepository, rewardRepository, accountCache, outboxRepository, idempotencyService, txManager)

	// controllers
	accountController := controllers.NewAccountController(accountService)
	restaurantController := controllers.NewRestaurantController(restaurantService)
	rewardController := controllers.NewRewardController(rewardService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "postgres", Check: func(ctx context.Context) error { return pool.Ping(ctx) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return broker.HealthCheck() }},
	})

	// router
	router := http.NewRouter(healthController, accountController, restaurantController, rewardController, rateLimiter)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
