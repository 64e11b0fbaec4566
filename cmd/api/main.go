package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/repairhub/internal/api/http"
	"github.com/spec-kit/repairhub/internal/api/http/handlers"
	"github.com/spec-kit/repairhub/internal/auth"
	"github.com/spec-kit/repairhub/internal/config"
	"github.com/spec-kit/repairhub/internal/events"
	"github.com/spec-kit/repairhub/internal/observability"
	"github.com/spec-kit/repairhub/internal/persistence"
	"github.com/spec-kit/repairhub/internal/repository"
	"github.com/spec-kit/repairhub/internal/service"
	"github.com/spec-kit/repairhub/internal/storage"
	"github.com/spec-kit/repairhub/internal/worker"
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

	photoStore, err := storage.NewPhotoStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to init photo store", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	issueRepo := repository.NewIssueRepository(pool)
	imageRepo := repository.NewIssueImageRepository(pool)
	partsRepo := repository.NewPartsRequestRepository(pool)
	timeLogRepo := repository.NewTimeLogRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	issueService := service.NewIssueService(service.IssueDependencies{
		IssueRepo:  issueRepo,
		ImageRepo:  imageRepo,
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	partsService := service.NewPartsService(service.PartsDependencies{
		PartsRepo:  partsRepo,
		IssueRepo:  issueRepo,
		Dispatcher: dispatcher,
	})
	timeLogService := service.NewTimeLogService(service.TimeLogDependencies{
		TimeLogRepo: timeLogRepo,
		IssueRepo:   issueRepo,
		Dispatcher:  dispatcher,
	})
	statsService := service.NewStatsService(statsRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, dispatcher)
	staffService := service.NewStaffService(userRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
		BodyLimit:             25 << 20,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Issues:         handlers.NewIssuesHandler(issueService, photoStore, logger),
		Staff:          handlers.NewStaffHandler(staffService),
		Parts:          handlers.NewPartsHandler(partsService),
		TimeLogs:       handlers.NewTimeLogsHandler(timeLogService),
		Stats:          handlers.NewStatsHandler(statsService),
		Feedback:       handlers.NewFeedbackHandler(feedbackService),
		AuthMiddleware: authMiddleware,
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
