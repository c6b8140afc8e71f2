package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/openmeteo"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/teburio"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/repository"
	"github.com/nbohlen/walkin-forecast-api/internal/config"
	"github.com/nbohlen/walkin-forecast-api/internal/usecases/forecasting"
	"github.com/nbohlen/walkin-forecast-api/pkg/log"
	"github.com/nbohlen/walkin-forecast-api/pkg/utils"
)

// DailySyncConfig holds the scheduler settings for the daily data sync.
type DailySyncConfig struct {
	CronSchedule        string
	BookingLookbackDays int
	BookingHorizonDays  int
	SnapshotHorizonDays int
	SyncEnabled         bool
}

// RunSummary describes one completed (or failed) sync run.
type RunSummary struct {
	RunID           string        `json:"run_id"`
	StartedAt       time.Time     `json:"started_at"`
	Duration        time.Duration `json:"duration"`
	BookingsFetched int           `json:"bookings_fetched"`
	BookingsNew     int64         `json:"bookings_new"`
	ForecastDays    int           `json:"forecast_days"`
	SnapshotDays    int           `json:"snapshot_days"`
	PredictedDays   int           `json:"predicted_days"`
	Failed          []string      `json:"failed_phases"`
	Err             string        `json:"error,omitempty"`
}

// DailySyncService schedules and runs the nightly pipeline: bookings,
// weather forecast, snapshots, yesterday's observed weather, prediction.
// The booking phase is the foundation; if it fails the run aborts. Every
// later phase is best effort and only excludes itself from the summary.
type DailySyncService struct {
	scheduler       *gocron.Scheduler
	config          DailySyncConfig
	appConfig       *config.Config
	bookingRepo     repository.BookingRepository
	snapshotRepo    repository.BookingSnapshotRepository
	weatherRepo     repository.WeatherForecastRepository
	weatherDaily    repository.WeatherDailyRepository
	teburioService  teburio.TeburioIntegrator
	weatherService  openmeteo.OpenMeteoIntegrator
	forecastService forecasting.Service

	syncRunning bool
	syncMutex   sync.Mutex
	lastSummary *RunSummary

	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailySyncService(
	bookingRepo repository.BookingRepository,
	snapshotRepo repository.BookingSnapshotRepository,
	weatherRepo repository.WeatherForecastRepository,
	weatherDaily repository.WeatherDailyRepository,
	teburioService teburio.TeburioIntegrator,
	weatherService openmeteo.OpenMeteoIntegrator,
	forecastService forecasting.Service,
	appConfig *config.Config,
) *DailySyncService {
	syncConfig := DailySyncConfig{
		CronSchedule:        appConfig.DailySync.CronSchedule,
		BookingLookbackDays: appConfig.DailySync.BookingLookbackDays,
		BookingHorizonDays:  appConfig.DailySync.BookingHorizonDays,
		SnapshotHorizonDays: appConfig.DailySync.SnapshotHorizonDays,
		SyncEnabled:         appConfig.DailySync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"booking_lookback_days": syncConfig.BookingLookbackDays,
		"booking_horizon_days":  syncConfig.BookingHorizonDays,
		"snapshot_horizon_days": syncConfig.SnapshotHorizonDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Daily sync scheduler configuration loaded")

	return &DailySyncService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          syncConfig,
		appConfig:       appConfig,
		bookingRepo:     bookingRepo,
		snapshotRepo:    snapshotRepo,
		weatherRepo:     weatherRepo,
		weatherDaily:    weatherDaily,
		teburioService:  teburioService,
		weatherService:  weatherService,
		forecastService: forecastService,
	}
}

// Start registers the cron job and runs the scheduler until the context is
// cancelled.
func (s *DailySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Daily sync disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Starting daily sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailySync()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule daily sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Stopping daily sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync starts a sync run outside the schedule, unless one is
// already in progress.
func (s *DailySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Daily sync already in progress, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Starting manual daily sync")
	go s.runDailySync()
}

func (s *DailySyncService) runDailySync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Daily sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, correlationID := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)

	runID, err := utils.GenerateID()
	if err != nil {
		runID = correlationID
	}

	summary := &RunSummary{
		RunID:     runID,
		StartedAt: time.Now(),
	}
	s.lastSyncStartedAt = summary.StartedAt

	logger.WithField("run_id", runID).Info("Starting daily sync run")

	today := utils.Midnight(time.Now())

	if err := s.syncBookings(ctx, today, summary); err != nil {
		// Everything downstream consumes bookings; without them the run
		// would predict on stale data.
		summary.Err = err.Error()
		summary.Duration = time.Since(summary.StartedAt)
		s.lastSummary = summary
		logger.WithError(err).Error("Booking sync failed, aborting daily sync run")
		return
	}

	s.runPhase(ctx, summary, "weather-forecast", func() error {
		return s.syncWeatherForecast(ctx, today, summary)
	})
	s.runPhase(ctx, summary, "snapshots", func() error {
		return s.syncSnapshots(ctx, today, summary)
	})
	s.runPhase(ctx, summary, "historical-weather", func() error {
		return s.syncYesterdayWeather(ctx, today)
	})
	s.runPhase(ctx, summary, "prediction", func() error {
		days, err := s.forecastService.Run(ctx, today)
		summary.PredictedDays = days
		return err
	})

	summary.Duration = time.Since(summary.StartedAt)
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()

	logger.WithFields(log.Fields{
		"run_id":           summary.RunID,
		"duration":         summary.Duration.String(),
		"bookings_fetched": summary.BookingsFetched,
		"bookings_new":     summary.BookingsNew,
		"forecast_days":    summary.ForecastDays,
		"snapshot_days":    summary.SnapshotDays,
		"predicted_days":   summary.PredictedDays,
		"failed_phases":    summary.Failed,
	}).Info("Daily sync run completed")
}

func (s *DailySyncService) runPhase(ctx context.Context, summary *RunSummary, name string, fn func() error) {
	if err := fn(); err != nil {
		summary.Failed = append(summary.Failed, name)
		log.ForContext(ctx).WithError(err).Errorf("Daily sync phase %q failed", name)
	}
}

func (s *DailySyncService) syncBookings(ctx context.Context, today time.Time, summary *RunSummary) error {
	countBefore, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count bookings: %w", err)
	}

	startDate := today.AddDate(0, 0, -s.config.BookingLookbackDays)
	endDate := today.AddDate(0, 0, s.config.BookingHorizonDays)

	bookings, err := s.teburioService.FetchBookings(ctx, startDate, endDate)
	if err != nil {
		return err
	}
	summary.BookingsFetched = len(bookings)

	if err := s.bookingRepo.SaveBatch(ctx, bookings); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}

	countAfter, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count bookings after sync: %w", err)
	}
	summary.BookingsNew = countAfter - countBefore

	if latest, err := s.bookingRepo.LatestBookingDate(ctx); err == nil && latest != nil {
		log.ForContext(ctx).WithField("latest_booking_date", latest.Format(time.DateOnly)).
			Debug("Booking horizon after sync")
	}

	return nil
}

func (s *DailySyncService) syncWeatherForecast(ctx context.Context, today time.Time, summary *RunSummary) error {
	forecasts, err := s.weatherService.FetchForecast(ctx, today)
	if err != nil {
		return err
	}

	if err := s.weatherRepo.SaveBatch(ctx, forecasts); err != nil {
		return fmt.Errorf("failed to save weather forecasts: %w", err)
	}

	summary.ForecastDays = len(forecasts)
	return nil
}

func (s *DailySyncService) syncSnapshots(ctx context.Context, today time.Time, summary *RunSummary) error {
	snapshots, err := s.teburioService.BuildSnapshots(ctx, today, s.config.SnapshotHorizonDays)
	if err != nil {
		return err
	}

	if err := s.snapshotRepo.SaveBatch(ctx, snapshots); err != nil {
		return fmt.Errorf("failed to save booking snapshots: %w", err)
	}

	summary.SnapshotDays = len(snapshots)
	return nil
}

// syncYesterdayWeather backfills the observed aggregate for yesterday so the
// historical table keeps up without a manual import.
func (s *DailySyncService) syncYesterdayWeather(ctx context.Context, today time.Time) error {
	yesterday := today.AddDate(0, 0, -1)

	days, err := s.weatherService.FetchHistorical(ctx, yesterday, yesterday)
	if err != nil {
		return err
	}

	return s.weatherDaily.SaveBatch(ctx, days)
}

// GetStatus reports the scheduler state for the status endpoint.
func (s *DailySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"booking_lookback_days":  s.config.BookingLookbackDays,
		"booking_horizon_days":   s.config.BookingHorizonDays,
		"snapshot_horizon_days":  s.config.SnapshotHorizonDays,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastSummary != nil {
		status["last_run"] = s.lastSummary
	}

	return status
}
