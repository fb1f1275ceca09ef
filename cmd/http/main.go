package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/delivery/http/controllers"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/delivery/http/routers"
	"timetable-service/internal/app/drivers/database"
	"timetable-service/internal/app/drivers/logger"
	"timetable-service/internal/app/drivers/messaging"
	"timetable-service/internal/app/drivers/storage"
	"timetable-service/internal/app/services/core/highlighter"
	"timetable-service/internal/app/services/core/preferences"
	"timetable-service/internal/app/services/core/schedules"
	"timetable-service/internal/app/services/core/viewer"
	"timetable-service/internal/app/services/shared/events"
	"timetable-service/internal/app/services/shared/locker"
	"timetable-service/internal/app/services/shared/redis"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		AccessLogger:   accessLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Only the drivers the configured sources need are connected.
	switch internalConfig.Schedule.Source {
	case constvars.ScheduleSourceMinio:
		bootstrap.Minio = storage.NewMinio(driverConfig, log)
	case constvars.ScheduleSourceMongo:
		bootstrap.MongoDB = database.NewMongoDB(driverConfig, log)
	}
	if internalConfig.Preferences.Store == constvars.PreferenceStoreRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig, log)
	}
	if internalConfig.Highlighter.PublishEvents {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Address + ":" + internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started",
			zap.String("address", server.Addr),
			zap.String("version", internalConfig.App.Version),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	accessLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	accessLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx := context.Background()
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	clock := utils.SystemClock{}

	// Schedule
	scheduleSource, err := schedules.NewScheduleSource(internalConfig, bootstrap.Minio, bootstrap.MongoDB)
	if err != nil {
		return err
	}
	scheduleRepository, err := schedules.NewScheduleRepository(ctx, scheduleSource, internalConfig.Schedule.DefaultBatch, log)
	if err != nil {
		return err
	}
	activeHighlighter := highlighter.NewHighlighter(scheduleRepository, clock, log)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleRepository, activeHighlighter, clock, log)

	// Preferences
	var (
		preferenceRepository contracts.PreferenceRepository
		lockerService        contracts.LockerService
	)
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		preferenceRepository = preferences.NewPreferenceRedisRepository(redisRepository, internalConfig.Preferences.TTL())
		lockerService = locker.NewLockService(redisRepository, log)
	} else {
		preferenceRepository = preferences.NewPreferenceMemoryRepository()
	}
	preferenceUsecase := preferences.NewPreferenceUsecase(
		preferenceRepository,
		scheduleRepository.DefaultBatch(),
		internalConfig.Preferences.RequestTimeout,
		log,
	)

	// Viewer
	viewerUsecase := viewer.NewViewerUsecase(scheduleRepository, preferenceUsecase, activeHighlighter, clock, internalConfig.Viewer, log)
	bootstrap.ViewerStop = viewerUsecase.Stop

	// Events
	publisher := events.NewNopPublisher(log)
	if bootstrap.RabbitMQ != nil {
		publisher, err = events.NewRabbitMQPublisher(bootstrap.RabbitMQ, log, internalConfig.RabbitMQ.ActiveClassQueue)
		if err != nil {
			return err
		}
	}

	// Highlighter worker
	worker := highlighter.NewWorker(log, internalConfig, lockerService, activeHighlighter, scheduleRepository, viewerUsecase, publisher, clock)
	worker.Start(ctx)
	bootstrap.WorkerStop = worker.Stop

	// Delivery
	middlewaresInstance := middlewares.NewMiddlewares(log, internalConfig)
	gestureLimiter := middlewares.NewRateLimiter(
		internalConfig.Viewer.GestureRateLimitPerSecond,
		internalConfig.Viewer.GestureBurst,
		internalConfig.Viewer.SessionIdleTTL(),
		log,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		bootstrap.AccessLogger,
		middlewaresInstance,
		gestureLimiter,
		controllers.NewHealthController(scheduleRepository),
		controllers.NewScheduleController(log, scheduleUsecase),
		controllers.NewViewerController(log, viewerUsecase),
	)
	return nil
}
