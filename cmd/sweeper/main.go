package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	lifecycleUsecases "github.com/lipagate/lipagate/internal/application/lifecycle/usecases"
	"github.com/lipagate/lipagate/internal/infrastructure/cache"
	"github.com/lipagate/lipagate/internal/infrastructure/config"
	"github.com/lipagate/lipagate/internal/infrastructure/database"
	"github.com/lipagate/lipagate/internal/infrastructure/notification"
	"github.com/lipagate/lipagate/internal/infrastructure/repository"
	"github.com/lipagate/lipagate/internal/infrastructure/scheduler"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// The sweeper is the lifecycle scheduler as a standalone process, for
// deployments that run the API with --no-scheduler and scale it
// horizontally. The redis lock keeps a sweeper and an API instance from
// sweeping at the same time.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting lifecycle sweeper", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	db := database.Get()
	subRepo := repository.NewSubscriptionRepository(db)
	platformSubRepo := repository.NewPlatformSubscriptionRepository(db)
	planRepo := repository.NewPlanRepository(db)
	merchantRepo := repository.NewMerchantRepository(db)
	productRepo := repository.NewProductRepository(db)

	var emailSender, smsSender, whatsappSender notification.Sender
	if cfg.Email.SMTPHost != "" {
		emailSender = notification.NewEmailSender(cfg.Email)
	}
	if cfg.SMS.APIURL != "" {
		smsSender = notification.NewSMSSender(cfg.SMS)
	}
	if cfg.WhatsApp.APIURL != "" {
		whatsappSender = notification.NewWhatsAppSender(cfg.WhatsApp)
	}
	dispatcher := notification.NewDispatcher(emailSender, smsSender, whatsappSender, log)

	sweepLock := cache.NewSweepLock(redisClient, log)

	sweepUC := lifecycleUsecases.NewSweepSubscriptionsUseCase(
		subRepo, platformSubRepo, planRepo, merchantRepo, productRepo,
		dispatcher, sweepLock, log,
	)
	if ttl := cfg.Sweep.LockTTLSeconds; ttl > 0 {
		sweepUC.SetLockTTL(time.Duration(ttl) * time.Second)
	}
	trialsUC := lifecycleUsecases.NewCheckTrialsUseCase(
		platformSubRepo, planRepo, merchantRepo, dispatcher, log,
	)

	manager, err := scheduler.NewManager(sweepUC, trialsUC, log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}

	interval := time.Duration(cfg.Sweep.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}
	if err := manager.RegisterJobs(interval); err != nil {
		log.Fatalw("failed to register jobs", "error", err)
	}
	manager.Start()
	log.Infow("lifecycle sweeper started", "interval", interval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Infow("shutting down sweeper")
	if err := manager.Stop(); err != nil {
		log.Errorw("failed to stop scheduler", "error", err)
	}
	log.Infow("sweeper exited gracefully")
}
