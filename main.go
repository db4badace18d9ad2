package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kariqs/hanythrift-api/events"
	"github.com/Kariqs/hanythrift-api/initializers"
	"github.com/Kariqs/hanythrift-api/middlewares"
	"github.com/Kariqs/hanythrift-api/routes"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/Kariqs/hanythrift-api/storage"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const serviceName = "hanythrift-api"

var version = "dev"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := initializers.NewLogger(serviceName, cfg.AppEnv, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := initializers.InitTracerProvider(ctx, cfg.OTLPEndpoint, serviceName, version)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown", zap.Error(err))
		}
	}()

	db, err := initializers.ConnectToDB(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	var publisher services.OrderEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewOrderProducer(cfg.KafkaBrokers, cfg.OrderEventsTopic)
		defer producer.Close()
		publisher = producer
		logger.Info("order events enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.OrderEventsTopic))
	}

	var images services.ImageStore
	if cfg.S3Bucket != "" {
		store, err := storage.NewS3ImageStore(ctx, cfg.S3Bucket)
		if err != nil {
			return err
		}
		images = store
		logger.Info("product image uploads enabled", zap.String("bucket", cfg.S3Bucket))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	users := services.NewUserStore(db)
	router := routes.SetupRouter(routes.Dependencies{
		Logger:      logger,
		Metrics:     middlewares.NewMetrics(),
		CORSOrigins: cfg.CORSOrigins,
		Auth: services.NewAuthService(services.AuthConfig{
			Secret:     cfg.JWTSecret,
			AccessTTL:  cfg.AccessTokenTTL,
			RefreshTTL: cfg.RefreshTokenTTL,
		}, users),
		Users:   users,
		Catalog: services.NewCatalogStore(db, images),
		Cart:    services.NewCartEngine(db),
		Orders:  services.NewOrderEngine(db, publisher, logger),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
