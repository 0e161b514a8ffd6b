package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	_ "github.com/shenikar/dispatch_feed_sync/docs"
	"github.com/shenikar/dispatch_feed_sync/internal/config"
	"github.com/shenikar/dispatch_feed_sync/internal/feed"
	"github.com/shenikar/dispatch_feed_sync/internal/geocoder"
	v1 "github.com/shenikar/dispatch_feed_sync/internal/handler/http/v1"
	"github.com/shenikar/dispatch_feed_sync/internal/kafka"
	"github.com/shenikar/dispatch_feed_sync/internal/observability"
	"github.com/shenikar/dispatch_feed_sync/internal/repository"
	"github.com/shenikar/dispatch_feed_sync/internal/service"
	"github.com/shenikar/dispatch_feed_sync/internal/webhook"
	"github.com/shenikar/dispatch_feed_sync/pkg/logger"
	"github.com/shenikar/dispatch_feed_sync/pkg/postgres"
	redisclient "github.com/shenikar/dispatch_feed_sync/pkg/redis"
)

const (
	dbMaxConns      = 10
	shutdownTimeout = 5 * time.Second
)

func runServe(cmd *cobra.Command, _ []string) error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	ctx := cmd.Context()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, dbMaxConns)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool)
	feedRequestRepo := repository.NewFeedRequestRepository(dbpool)

	g, gctx := errgroup.WithContext(ctx)

	publisher, closePublisher := newEventPublisher(gctx, g, cfg, redisClient, log, metrics)
	defer func() {
		if err := closePublisher(); err != nil {
			log.WithError(err).Warn("Failed to close event publisher")
		}
	}()

	// Инициализация сервисов
	audit := service.NewFeedRequestLogger(feedRequestRepo, log)
	updater, err := service.NewUpdater(service.UpdaterParams{
		Feed:          feed.NewClient(cfg.FeedURL, cfg.FeedParser, cfg.FeedTimeout, log),
		Upserter:      service.NewUpserter(incidentRepo, log, clock, metrics, cfg.ReactivateOnSighting),
		Audit:         audit,
		Repo:          incidentRepo,
		Geocoder:      newGeocoder(cfg, redisClient, log, metrics),
		Publisher:     publisher,
		Logger:        log,
		Clock:         clock,
		Metrics:       metrics,
		Interval:      cfg.PollInterval,
		WarmStart:     cfg.WarmStart,
		AddressSuffix: cfg.GeocodingAddressSuffix,
	})
	if err != nil {
		return err
	}
	g.Go(func() error { return updater.Run(gctx) })

	var resolver *service.StalenessResolver
	if cfg.ResolverEnabled {
		resolver, err = service.NewStalenessResolver(incidentRepo, log, clock, metrics, cfg.ResolverInterval, cfg.ResolverThreshold())
		if err != nil {
			return err
		}
		g.Go(func() error { return resolver.Run(gctx) })
	} else {
		log.Info("Staleness resolver is disabled")
	}

	feedService := service.NewFeedService(updater, audit, resolver)

	// Инициализация хэндлеров
	handler := v1.NewHandler(feedService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server gracefully stopped")
	return nil
}

// newGeocoder возвращает nil, если геокодирование выключено
func newGeocoder(cfg *config.Config, redisClient *redis.Client, log *logrus.Logger, metrics *observability.Metrics) service.Geocoder {
	if !cfg.GeocodingEnabled {
		return nil
	}
	google := geocoder.NewGoogleClient(cfg.GoogleMapsAPIKey, cfg.GeocodingTimeout, cfg.GeocodingRPS, log)
	return geocoder.NewCachedGeocoder(google, redisClient, cfg.GeocodingCacheTTL, metrics, log)
}

// newEventPublisher выбирает приемник событий. Для redis запускает воркер доставки вебхуков в g.
func newEventPublisher(
	ctx context.Context,
	g *errgroup.Group,
	cfg *config.Config,
	redisClient *redis.Client,
	log *logrus.Logger,
	metrics *observability.Metrics,
) (service.EventPublisher, func() error) {
	noop := func() error { return nil }

	switch cfg.EventsSink {
	case "redis":
		worker := webhook.NewWebhookWorker(redisClient, log, cfg, metrics)
		g.Go(func() error { return worker.Run(ctx) })
		return webhook.NewRedisWebhookPublisher(redisClient), noop
	case "kafka":
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		return publisher, publisher.Close
	default:
		log.Info("Change events are disabled")
		return nil, noop
	}
}
