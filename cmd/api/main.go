package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/bloodlink/donor-service/internal/api/http"
	"github.com/bloodlink/donor-service/internal/api/http/handlers"
	"github.com/bloodlink/donor-service/internal/config"
	"github.com/bloodlink/donor-service/internal/events"
	"github.com/bloodlink/donor-service/internal/observability"
	"github.com/bloodlink/donor-service/internal/persistence"
	"github.com/bloodlink/donor-service/internal/repository"
	"github.com/bloodlink/donor-service/internal/service"
	"github.com/bloodlink/donor-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	donorRepo := repository.NewDonorRepository(pool)
	emergencyRepo := repository.NewEmergencyRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	matchingService := service.NewMatchingService(donorRepo, logger, metrics)
	donorService := service.NewDonorService(service.DonorDependencies{
		DonorRepo:  donorRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	emergencyService := service.NewEmergencyService(service.EmergencyDependencies{
		EmergencyRepo: emergencyRepo,
		Matcher:       matchingService,
		Dispatcher:    dispatcher,
		Logger:        logger,
	})
	statsService := service.NewStatsService(donorRepo, redis, cfg.Stats.ActiveDonorsTTL(), logger)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	donorsHandler := handlers.NewDonorsHandler(donorService)
	emergencyHandler := handlers.NewEmergencyHandler(emergencyService)
	statsHandler := handlers.NewStatsHandler(statsService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    healthHandler,
		Donors:    donorsHandler,
		Emergency: emergencyHandler,
		Stats:     statsHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
