package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/biglittle/lending/internal/application/usecase"
	"github.com/biglittle/lending/internal/domain/service"
	"github.com/biglittle/lending/internal/infrastructure/cache"
	"github.com/biglittle/lending/internal/infrastructure/config"
	"github.com/biglittle/lending/internal/infrastructure/messaging"
	pgRepo "github.com/biglittle/lending/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/biglittle/lending/internal/presentation/grpc"
	"github.com/biglittle/lending/internal/presentation/rest"
	"github.com/biglittle/lending/pkg/auth"
	pkgkafka "github.com/biglittle/lending/pkg/kafka"
	"github.com/biglittle/lending/pkg/observability"
	pkgpostgres "github.com/biglittle/lending/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Local development overrides; absence of a .env file is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Service: cfg.ServiceName,
		Level:   cfg.Observability.LogLevel,
		Format:  cfg.Observability.LogFormat,
	})

	logger.Info("starting loan-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Tracing is optional; the service runs without a collector.
	if cfg.Observability.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.Observability.OTLPEndpoint,
			Insecure:    cfg.Observability.OTLPInsecure,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
		}
	}

	meterProvider, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		AppName:  cfg.ServiceName,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), cfg.MigrationsURL); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Infrastructure adapters.
	loanRepo := pgRepo.NewLoanRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	amountDueCache := cache.NewRedisAmountDueCache(redisClient)

	rates := service.NewRandomRateStrategy(rand.New(rand.NewSource(time.Now().UnixNano())))
	simulator := service.NewProposalSimulator(rates)

	// Use cases.
	proposeUC := usecase.NewProposeLoanUseCase()
	simulateUC := usecase.NewSimulateProposalsUseCase(simulator)
	openUC := usecase.NewOpenLoanUseCase(loanRepo, publisher, logger)
	paymentUC := usecase.NewProcessPaymentUseCase(loanRepo, publisher, logger)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	amountDueUC := usecase.NewGetAmountDueUseCase(loanRepo, amountDueCache, logger)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{Issuer: "biglittle-gateway"}
	switch {
	case cfg.Auth.PublicKey != "":
		jwtCfg.PublicKeyPEM = cfg.Auth.PublicKey
	case cfg.Auth.PublicKeyFile != "":
		keyData, loadErr := auth.LoadKeyFromFile(cfg.Auth.PublicKeyFile)
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtCfg.Secret = cfg.Auth.Secret
		if jwtCfg.Secret == "" {
			jwtCfg.Secret = "test-e2e-secret" // match gateway default for E2E tests
		}
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewLoanHandler(proposeUC, simulateUC, openUC, paymentUC, getLoanUC, amountDueUC)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc, cfg.TLSCertFile, cfg.TLSKeyFile)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadinessCheck{
		"postgres": func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		},
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("loan-service stopped")
}
