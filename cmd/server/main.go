package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/fincast/fincast-backend/internal/adapter/grpc"
	fincastv1 "github.com/fincast/fincast-backend/internal/adapter/grpc/fincast/v1"
	"github.com/fincast/fincast-backend/internal/adapter/repository/postgres"
	"github.com/fincast/fincast-backend/internal/config"
	"github.com/fincast/fincast-backend/internal/usecase/classifier"
	"github.com/fincast/fincast-backend/internal/usecase/forecast"
	"github.com/fincast/fincast-backend/internal/usecase/health"
	"github.com/fincast/fincast-backend/internal/usecase/scenario"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// 1. Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// 2. Setup database
	db, err := postgres.NewDB(cfg.DBConn)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// 3. Initialize repositories (Postgres)
	patternRepo := postgres.NewPatternRepository(db)
	aggregateRepo := postgres.NewAggregateRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)

	// 4. Initialize services (use cases)
	classifierService := classifier.NewService(patternRepo, categoryRepo)

	forecastService := forecast.NewService(aggregateRepo)
	forecastService.MaxHistoricalMonths = cfg.Engine.Forecast.MaxHistoricalMonths
	forecastService.MaxForecastMonths = cfg.Engine.Forecast.MaxForecastMonths

	scenarioService := scenario.NewService(aggregateRepo)

	healthService := health.NewService(aggregateRepo)
	healthService.Tuning = health.Config{
		SavingsWeight:           cfg.Engine.Health.SavingsWeight,
		DiversificationWeight:   cfg.Engine.Health.DiversificationWeight,
		DebtWeight:              cfg.Engine.Health.DebtWeight,
		EmergencyWeight:         cfg.Engine.Health.EmergencyWeight,
		SavingsRateMultiplier:   cfg.Engine.Health.SavingsRateMultiplier,
		EmergencyTargetMonths:   cfg.Engine.Health.EmergencyTargetMonths,
		DiversificationMinShare: cfg.Engine.Health.DiversificationMinShare,
	}

	// 5. Start gRPC server with auth and logging interceptors
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.AuthInterceptor(cfg.APIToken),
			grpcadapter.LoggingInterceptor(log),
		),
	)

	grpcAdapter := grpcadapter.NewServer(
		classifierService,
		forecastService,
		scenarioService,
		healthService,
		cfg.Engine,
		log,
	)
	fincastv1.RegisterFincastServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		log.WithError(err).WithField("port", cfg.Port).Fatal("Failed to listen")
	}

	go func() {
		log.WithField("port", cfg.Port).Info("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.WithError(err).Fatal("Failed to serve gRPC server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, log)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down
// the server
func waitForShutdown(grpcServer *grpclib.Server, log *logrus.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.WithField("signal", sig.String()).Info("Shutting down gracefully")

	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")
}
