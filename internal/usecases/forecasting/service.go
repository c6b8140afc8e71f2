package forecasting

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/nbohlen/walkin-forecast-api/infrastructure/repository"
	"github.com/nbohlen/walkin-forecast-api/internal/config"
	"github.com/nbohlen/walkin-forecast-api/internal/domain"
	"github.com/nbohlen/walkin-forecast-api/pkg/log"
	"github.com/nbohlen/walkin-forecast-api/pkg/utils"
)

// Service runs the walk-in prediction: load aggregates, engineer features,
// score, persist.
type Service interface {
	Run(ctx context.Context, today time.Time) (int, error)
}

type service struct {
	cfg          *config.Config
	bookingRepo  repository.BookingRepository
	weatherRepo  repository.WeatherForecastRepository
	forecastRepo repository.WalkinForecastRepository
	predictor    Predictor
	builder      *FeatureBuilder
}

func NewService(
	cfg *config.Config,
	bookingRepo repository.BookingRepository,
	weatherRepo repository.WeatherForecastRepository,
	forecastRepo repository.WalkinForecastRepository,
	predictor Predictor,
) Service {
	return &service{
		cfg:          cfg,
		bookingRepo:  bookingRepo,
		weatherRepo:  weatherRepo,
		forecastRepo: forecastRepo,
		predictor:    predictor,
		builder:      NewFeatureBuilder(),
	}
}

// Run predicts walk-in guests for today through today+horizon and upserts
// the results. It returns the number of predicted days.
func (s *service) Run(ctx context.Context, today time.Time) (int, error) {
	logger := log.ForContext(ctx)

	today = utils.Midnight(today)
	historyStart := today.AddDate(0, 0, -s.cfg.Model.HistorySeedDays)
	forecastEnd := today.AddDate(0, 0, s.cfg.Model.DaysAhead)

	logger.WithFields(log.Fields{
		"history_start": historyStart.Format(time.DateOnly),
		"forecast_end":  forecastEnd.Format(time.DateOnly),
		"model":         s.predictor.Name(),
	}).Info("Starting walk-in prediction")

	bookings, err := s.bookingRepo.AggregateConfirmedPerDay(ctx, historyStart, forecastEnd)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load booking aggregates")
	}

	walkins, err := s.bookingRepo.WalkinPeoplePerDay(ctx, historyStart, today)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load walk-in history")
	}

	weather, err := s.weatherRepo.LatestPerDay(ctx, historyStart, forecastEnd)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load weather forecasts")
	}

	rows := s.builder.Build(FeatureInput{
		Today:           today,
		HistorySeedDays: s.cfg.Model.HistorySeedDays,
		DaysAhead:       s.cfg.Model.DaysAhead,
		Bookings:        bookings,
		Walkins:         walkins,
		Weather:         weather,
	})

	if len(rows) == 0 {
		logger.Warn("Feature pipeline produced no rows, nothing to predict")
		return 0, nil
	}

	predictions := s.predictor.Predict(rows)

	runAt := time.Now()
	forecasts := make([]*domain.WalkinForecast, 0, len(rows))
	for i, row := range rows {
		forecasts = append(forecasts, &domain.WalkinForecast{
			TargetDate:  row.Date,
			PredWalkins: predictions[i],
			ModelName:   s.predictor.Name(),
			RunAt:       runAt,
		})
	}

	if err := s.forecastRepo.SaveBatch(ctx, forecasts); err != nil {
		return 0, errors.Wrap(err, "failed to save walk-in forecasts")
	}

	logger.Infof("Saved %d walk-in predictions", len(forecasts))

	return len(forecasts), nil
}
