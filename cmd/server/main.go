package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-event-registration/config"
	"go-event-registration/internal/cache"
	"go-event-registration/internal/database"
	"go-event-registration/internal/handler"
	"go-event-registration/internal/notification"
	"go-event-registration/internal/queue"
	"go-event-registration/internal/repository"
	"go-event-registration/internal/service"
	"go-event-registration/internal/worker"
	"go-event-registration/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	log := logger.WithComponent("main")

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(&cfg.Database); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	eventRepo := repository.NewEventRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	eventCache := cache.NewRedisEventCache(rdb, cfg.Cache.OpenEventsTTL)

	notificationQueue, err := queue.NewRedisStreamNotificationQueue(rdb, "", nil)
	if err != nil {
		log.Fatal("failed to initialize notification queue", zap.Error(err))
	}

	var mailer notification.Mailer
	if cfg.Mail.SMTPHost != "" {
		mailer = notification.NewSMTPMailer(cfg.Mail)
	} else {
		log.Warn("SMTP_HOST not set, using log mail transport")
		mailer = notification.NewLogMailer()
	}
	notifier := notification.NewNotificationService(mailer, cfg.Mail)

	eventService := service.NewEventService(eventRepo, eventCache, time.Now)
	registrationService := service.NewRegistrationService(
		eventRepo, registrationRepo, notificationQueue, validator.New(), time.Now,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notificationWorker := worker.NewNotificationWorker(notifier, notificationQueue)
	if err := notificationWorker.Start(ctx); err != nil {
		log.Fatal("failed to start notification worker", zap.Error(err))
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewRegistrationHandler(registrationService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped unexpectedly", zap.Error(err))
	}
}
