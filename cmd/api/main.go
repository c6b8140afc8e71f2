package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/database/postgres"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/openmeteo"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/openmeteo/openmeteoclient"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/teburio"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/teburio/teburioclient"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/repository"
	"github.com/nbohlen/walkin-forecast-api/internal/api"
	"github.com/nbohlen/walkin-forecast-api/internal/config"
	"github.com/nbohlen/walkin-forecast-api/internal/scheduler"
	"github.com/nbohlen/walkin-forecast-api/internal/usecases/forecasting"
	"github.com/nbohlen/walkin-forecast-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	bookingRepo := repository.NewBookingRepository(pgConn)
	snapshotRepo := repository.NewBookingSnapshotRepository(pgConn)
	weatherForecastRepo := repository.NewWeatherForecastRepository(pgConn)
	weatherDailyRepo := repository.NewWeatherDailyRepository(pgConn)
	walkinForecastRepo := repository.NewWalkinForecastRepository(pgConn)
	dashboardRepo := repository.NewDashboardRepository(pgConn)

	teburioClient := teburioclient.NewClient(cfg)
	teburioIntegrator, err := teburio.New(cfg, teburioClient)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize booking integrator")
	}

	openMeteoClient := openmeteoclient.NewClient(cfg)
	weatherIntegrator := openmeteo.New(cfg, openMeteoClient)

	predictor, err := forecasting.LoadModel(cfg.Model.ArtifactPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load model artifact")
	}

	forecastService := forecasting.NewService(
		cfg,
		bookingRepo,
		weatherForecastRepo,
		walkinForecastRepo,
		predictor,
	)

	reportingService := reporting.NewService(cfg, dashboardRepo, snapshotRepo, walkinForecastRepo)

	dailySyncService := scheduler.NewDailySyncService(
		bookingRepo,
		snapshotRepo,
		weatherForecastRepo,
		weatherDailyRepo,
		teburioIntegrator,
		weatherIntegrator,
		forecastService,
		cfg,
	)

	if err := dailySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start daily sync scheduler")
	} else {
		logrus.Info("Daily sync scheduler started")
	}

	server, err := api.New(cfg, reportingService, dailySyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
