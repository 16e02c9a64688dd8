package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/usecase"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/artifact"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/config"
	infrakafka "github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/kafka"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/messaging"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/metrics"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/infrastructure/storage"
	grpcpresentation "github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/presentation/grpc"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/presentation/rest"
	pkgkafka "github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/kafka"
	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/observability"
)

const serviceName = "nutrition-service"

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
	})
	logger.Info("starting nutrition-service")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cfg.OTLPEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: serviceName,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Error("failed to initialize tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			}
		}()
	}

	m, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: serviceName})
	if err != nil {
		logger.Error("failed to initialize metrics", slog.String("error", err.Error()))
		os.Exit(1)
	}
	recorder, err := metrics.NewPredictionRecorder(m.Meter(serviceName))
	if err != nil {
		logger.Error("failed to create prediction metrics", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the artifact store and load the model.
	store, closeStore, err := storage.Open(ctx, storage.Options{
		Kind:        cfg.ArtifactStore,
		Path:        cfg.ArtifactPath,
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
	}, logger)
	if err != nil {
		logger.Error("failed to open artifact store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	engine, err := usecase.NewLoadModel(store, artifact.NewJSONCodec(), logger).Execute(ctx, cfg.ArtifactKey)
	if err != nil {
		if cfg.RequireModel {
			logger.Error("failed to load model", slog.String("error", err.Error()))
			closeStore()
			os.Exit(1)
		}
		logger.Warn("starting without a model, predictions will be rejected", slog.String("error", err.Error()))
	}

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	predictUC := usecase.NewPredictDeficiency(engine, publisher, recorder, logger)

	// Initialize gRPC handler and server.
	grpcHandler := grpcpresentation.NewNutritionServiceHandler(predictUC, logger)
	grpcServer, err := grpcpresentation.NewServer(grpcHandler, grpcpresentation.ServerConfig{
		Address:     cfg.GRPCAddress(),
		TLSCertFile: cfg.TLSCertFile,
		TLSKeyFile:  cfg.TLSKeyFile,
		Reflection:  cfg.GRPCReflection,
		Ready:       predictUC.Ready(),
	}, logger)
	if err != nil {
		logger.Error("failed to create gRPC server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize HTTP server.
	var limiter *rest.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = rest.NewRateLimiter(cfg.RateLimitRPS)
	}
	httpServer := &http.Server{
		Addr: cfg.HTTPAddress(),
		Handler: rest.NewRouter(rest.RouterConfig{
			Predict:        rest.NewPredictHandler(predictUC, logger),
			Health:         rest.NewHealthHandler(predictUC, logger),
			Metrics:        m.Handler,
			Logger:         logger,
			Limiter:        limiter,
			AllowedOrigins: cfg.AllowedOrigins,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", slog.String("address", cfg.HTTPAddress()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("nutrition-service started",
		slog.String("grpc_address", cfg.GRPCAddress()),
		slog.String("http_address", cfg.HTTPAddress()),
		slog.String("environment", cfg.Environment),
	)

	// Wait for shutdown signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server error", slog.String("error", err.Error()))
	}

	// Graceful shutdown.
	logger.Info("shutting down nutrition-service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	grpcServer.Stop()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}
	if err := m.Provider.Shutdown(shutdownCtx); err != nil {
		logger.Error("meter provider shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("nutrition-service stopped")
}

// newPublisher returns a Kafka publisher when a broker is configured and a
// log-only publisher otherwise.
func newPublisher(cfg *config.Config, logger *slog.Logger) (port.EventPublisher, func()) {
	if cfg.KafkaBroker == "" {
		logger.Info("KAFKA_BROKER not set, events are logged only")
		return messaging.NewLogPublisher(cfg.EventsTopic, logger), func() {}
	}

	producer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers:  []string{cfg.KafkaBroker},
		ClientID: serviceName,
	})
	logger.Info("publishing events to kafka",
		slog.String("broker", cfg.KafkaBroker),
		slog.String("topic", cfg.EventsTopic),
	)
	return infrakafka.NewPublisher(producer, cfg.EventsTopic, logger), func() {
		if err := producer.Close(); err != nil {
			logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}
}
