package forecasting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nbohlen/walkin-forecast-api/infrastructure/repository/mocks"
	"github.com/nbohlen/walkin-forecast-api/internal/config"
	"github.com/nbohlen/walkin-forecast-api/internal/domain"
)

type fixedPredictor struct {
	value float64
}

func (p *fixedPredictor) Name() string {
	return "fixed_test"
}

func (p *fixedPredictor) Predict(rows []*FeatureRow) []float64 {
	predictions := make([]float64, len(rows))
	for i := range predictions {
		predictions[i] = p.value
	}
	return predictions
}

func forecastingTestConfig() *config.Config {
	return &config.Config{
		Model: config.Model{
			Name:            "fixed_test",
			HistorySeedDays: 14,
			DaysAhead:       16,
		},
	}
}

func TestServiceRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingRepo := mocks.NewMockBookingRepository(ctrl)
	weatherRepo := mocks.NewMockWeatherForecastRepository(ctrl)
	forecastRepo := mocks.NewMockWalkinForecastRepository(ctrl)

	today := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	historyStart := today.AddDate(0, 0, -14)
	forecastEnd := today.AddDate(0, 0, 16)

	bookingRepo.EXPECT().
		AggregateConfirmedPerDay(gomock.Any(), historyStart, forecastEnd).
		Return([]domain.BookingDayAggregate{
			{Date: today, ReservationsCount: 8, ReservationsPeople: 40, AvgReservationSize: 5},
		}, nil)

	bookingRepo.EXPECT().
		WalkinPeoplePerDay(gomock.Any(), historyStart, today).
		Return([]domain.WalkinDayAggregate{
			{Date: today.AddDate(0, 0, -1), WalkinPeople: 12},
		}, nil)

	weatherRepo.EXPECT().
		LatestPerDay(gomock.Any(), historyStart, forecastEnd).
		Return([]domain.WeatherDay{
			{Date: today, TempMax: 21, TempMin: 13, SunshineHours: 7, WindSpeedMax: 10, CloudCoverMean: 30},
		}, nil)

	var saved []*domain.WalkinForecast
	forecastRepo.EXPECT().
		SaveBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, forecasts []*domain.WalkinForecast) error {
			saved = forecasts
			return nil
		})

	service := NewService(forecastingTestConfig(), bookingRepo, weatherRepo, forecastRepo, &fixedPredictor{value: 25})

	days, err := service.Run(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, 17, days)
	require.Len(t, saved, 17)

	assert.Equal(t, today, saved[0].TargetDate)
	assert.Equal(t, today.AddDate(0, 0, 16), saved[16].TargetDate)
	for _, forecast := range saved {
		assert.Equal(t, 25.0, forecast.PredWalkins)
		assert.Equal(t, "fixed_test", forecast.ModelName)
		assert.Equal(t, saved[0].RunAt, forecast.RunAt, "one run, one timestamp")
	}
}

func TestServiceRunErrors(t *testing.T) {
	today := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		setup       func(booking *mocks.MockBookingRepository, weather *mocks.MockWeatherForecastRepository, forecast *mocks.MockWalkinForecastRepository)
		expectError string
	}{
		{
			name: "booking aggregates fail",
			setup: func(booking *mocks.MockBookingRepository, weather *mocks.MockWeatherForecastRepository, forecast *mocks.MockWalkinForecastRepository) {
				booking.EXPECT().
					AggregateConfirmedPerDay(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectError: "failed to load booking aggregates",
		},
		{
			name: "walk-in history fails",
			setup: func(booking *mocks.MockBookingRepository, weather *mocks.MockWeatherForecastRepository, forecast *mocks.MockWalkinForecastRepository) {
				booking.EXPECT().
					AggregateConfirmedPerDay(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				booking.EXPECT().
					WalkinPeoplePerDay(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectError: "failed to load walk-in history",
		},
		{
			name: "weather fails",
			setup: func(booking *mocks.MockBookingRepository, weather *mocks.MockWeatherForecastRepository, forecast *mocks.MockWalkinForecastRepository) {
				booking.EXPECT().
					AggregateConfirmedPerDay(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				booking.EXPECT().
					WalkinPeoplePerDay(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				weather.EXPECT().
					LatestPerDay(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectError: "failed to load weather forecasts",
		},
		{
			name: "saving forecasts fails",
			setup: func(booking *mocks.MockBookingRepository, weather *mocks.MockWeatherForecastRepository, forecast *mocks.MockWalkinForecastRepository) {
				booking.EXPECT().
					AggregateConfirmedPerDay(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				booking.EXPECT().
					WalkinPeoplePerDay(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				weather.EXPECT().
					LatestPerDay(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				forecast.EXPECT().
					SaveBatch(gomock.Any(), gomock.Any()).
					Return(errors.New("db down"))
			},
			expectError: "failed to save walk-in forecasts",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bookingRepo := mocks.NewMockBookingRepository(ctrl)
			weatherRepo := mocks.NewMockWeatherForecastRepository(ctrl)
			forecastRepo := mocks.NewMockWalkinForecastRepository(ctrl)
			tc.setup(bookingRepo, weatherRepo, forecastRepo)

			service := NewService(forecastingTestConfig(), bookingRepo, weatherRepo, forecastRepo, &fixedPredictor{value: 1})

			days, err := service.Run(context.Background(), today)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectError)
			assert.Zero(t, days)
		})
	}
}
