package openmeteo

import (
	"context"
	"fmt"
	"time"

	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/openmeteo/openmeteoclient"
	"github.com/nbohlen/walkin-forecast-api/internal/config"
	"github.com/nbohlen/walkin-forecast-api/internal/domain"
	"github.com/nbohlen/walkin-forecast-api/pkg/log"
)

// Archive fallbacks for days where the reanalysis has gaps.
const (
	defaultHumidity    = 70.0
	defaultPressureMSL = 1013.0
	defaultCloudCover  = 50.0
	defaultWeatherCode = 1

	secondsPerHour = 3600.0

	dataSourceOpenMeteo = "openmeteo"
)

type OpenMeteoIntegrator interface {
	FetchForecast(ctx context.Context, forecastDate time.Time) ([]*domain.WeatherForecast, error)
	FetchHistorical(ctx context.Context, startDate, endDate time.Time) ([]*domain.WeatherDaily, error)
}

type OpenMeteoService struct {
	cfg    *config.Config
	Client openmeteoclient.Client
}

func New(cfg *config.Config, client openmeteoclient.Client) OpenMeteoIntegrator {
	return &OpenMeteoService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchForecast pulls the configured forecast horizon and stamps every row
// with the given creation date. Sunshine arrives in seconds and is converted
// to hours here; everything downstream works in hours.
func (s *OpenMeteoService) FetchForecast(ctx context.Context, forecastDate time.Time) ([]*domain.WeatherForecast, error) {
	resp, err := s.Client.DailyForecast(ctx, s.cfg.Weather.ForecastDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather forecast: %w", err)
	}

	daily := resp.Daily
	forecasts := make([]*domain.WeatherForecast, 0, len(daily.Time))

	for i, dateStr := range daily.Time {
		targetDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid forecast date %q: %w", dateStr, err)
		}

		daysAhead := int(targetDate.Sub(midnight(forecastDate)).Hours()/24) + 1

		forecasts = append(forecasts, &domain.WeatherForecast{
			ForecastCreatedAt: forecastDate,
			ForecastDate:      targetDate,
			DaysAhead:         daysAhead,
			TempMax:           floatAt(daily.TemperatureMax, i, 0),
			TempMin:           floatAt(daily.TemperatureMin, i, 0),
			PrecipitationSum:  floatAt(daily.PrecipitationSum, i, 0),
			PrecipitationProb: floatAt(daily.PrecipitationProb, i, 0),
			SunshineHours:     floatAt(daily.SunshineDuration, i, 0) / secondsPerHour,
			WindSpeedMax:      floatAt(daily.WindSpeedMax, i, 0),
			CloudCoverMean:    floatAt(daily.CloudCoverMean, i, 0),
			WeatherCode:       intAt(daily.WeatherCode, i, 0),
			ApparentTempMax:   floatAt(daily.ApparentTempMax, i, 0),
			ApparentTempMin:   floatAt(daily.ApparentTempMin, i, 0),
		})
	}

	log.ForContext(ctx).Infof("Fetched %d weather forecast days", len(forecasts))

	return forecasts, nil
}

// FetchHistorical pulls observed daily aggregates from the archive. Gaps get
// neutral defaults so a single missing day never breaks the backfill.
func (s *OpenMeteoService) FetchHistorical(ctx context.Context, startDate, endDate time.Time) ([]*domain.WeatherDaily, error) {
	resp, err := s.Client.HistoricalDaily(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch historical weather: %w", err)
	}

	daily := resp.Daily
	days := make([]*domain.WeatherDaily, 0, len(daily.Time))

	for i, dateStr := range daily.Time {
		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid archive date %q: %w", dateStr, err)
		}

		days = append(days, &domain.WeatherDaily{
			Date:               date,
			Location:           s.cfg.Weather.LocationName,
			TempMax:            ptrAt(daily.TemperatureMax, i),
			TempMin:            ptrAt(daily.TemperatureMin, i),
			PrecipitationSum:   floatAt(daily.PrecipitationSum, i, 0),
			PrecipitationHours: floatAt(daily.PrecipitationHours, i, 0),
			Humidity:           floatAt(daily.HumidityMean, i, defaultHumidity),
			WindSpeedMax:       floatAt(daily.WindSpeedMaxLegacy, i, 0),
			PressureMSL:        floatAt(daily.PressureMSLMean, i, defaultPressureMSL),
			SunshineHours:      floatAt(daily.SunshineDuration, i, 0) / secondsPerHour,
			CloudCoverMean:     floatAt(daily.CloudCoverMeanLegacy, i, defaultCloudCover),
			WeatherCode:        intAt(daily.WeatherCode, i, defaultWeatherCode),
			DataSource:         dataSourceOpenMeteo,
		})
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Infof("Fetched %d historical weather days", len(days))

	return days, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func floatAt(values []*float64, i int, fallback float64) float64 {
	if i >= len(values) || values[i] == nil {
		return fallback
	}
	return *values[i]
}

func intAt(values []*int, i int, fallback int) int {
	if i >= len(values) || values[i] == nil {
		return fallback
	}
	return *values[i]
}

func ptrAt(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}
