package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/database/postgres"
	"github.com/nbohlen/walkin-forecast-api/internal/domain"
)

type WeatherForecastRepository interface {
	SaveBatch(ctx context.Context, forecasts []*domain.WeatherForecast) error
	LatestPerDay(ctx context.Context, startDate, endDate time.Time) ([]domain.WeatherDay, error)
}

type weatherForecastRepository struct {
	conn *postgres.Connection
}

func NewWeatherForecastRepository(conn *postgres.Connection) WeatherForecastRepository {
	return &weatherForecastRepository{
		conn: conn,
	}
}

// SaveBatch upserts one forecast poll in a single transaction, keyed by
// (forecast creation date, target date). Polling again on the same day
// refreshes that day's rows.
func (r *weatherForecastRepository) SaveBatch(ctx context.Context, forecasts []*domain.WeatherForecast) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, forecast := range forecasts {
			if err := r.upsert(ctx, tx, forecast); err != nil {
				return fmt.Errorf("failed to upsert weather forecast for %s: %w",
					forecast.ForecastDate.Format("2006-01-02"), err)
			}
		}
		return nil
	})
}

func (r *weatherForecastRepository) upsert(ctx context.Context, tx *sql.Tx, forecast *domain.WeatherForecast) error {
	query := squirrel.StatementBuilder.
		Insert("weather_forecasts").
		Columns(
			"forecast_created_at", "forecast_date", "days_ahead",
			"temperature_2m_max", "temperature_2m_min", "precipitation_sum",
			"precipitation_probability_mean", "sunshine_hours",
			"wind_speed_10m_max", "cloud_cover_mean", "weathercode",
			"apparent_temperature_max", "apparent_temperature_min",
		).
		Values(
			forecast.ForecastCreatedAt.Format("2006-01-02"),
			forecast.ForecastDate.Format("2006-01-02"),
			forecast.DaysAhead,
			forecast.TempMax,
			forecast.TempMin,
			forecast.PrecipitationSum,
			forecast.PrecipitationProb,
			forecast.SunshineHours,
			forecast.WindSpeedMax,
			forecast.CloudCoverMean,
			forecast.WeatherCode,
			forecast.ApparentTempMax,
			forecast.ApparentTempMin,
		).
		Suffix(`
			ON CONFLICT (forecast_created_at, forecast_date) DO UPDATE SET
				days_ahead = EXCLUDED.days_ahead,
				temperature_2m_max = EXCLUDED.temperature_2m_max,
				temperature_2m_min = EXCLUDED.temperature_2m_min,
				precipitation_sum = EXCLUDED.precipitation_sum,
				precipitation_probability_mean = EXCLUDED.precipitation_probability_mean,
				sunshine_hours = EXCLUDED.sunshine_hours,
				wind_speed_10m_max = EXCLUDED.wind_speed_10m_max,
				cloud_cover_mean = EXCLUDED.cloud_cover_mean,
				weathercode = EXCLUDED.weathercode,
				apparent_temperature_max = EXCLUDED.apparent_temperature_max,
				apparent_temperature_min = EXCLUDED.apparent_temperature_min,
				created_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = tx.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// LatestPerDay returns, for every target date in the range, the forecast row
// from the most recent poll. Dates without any forecast are absent from the
// result; the feature pipeline fills those.
func (r *weatherForecastRepository) LatestPerDay(ctx context.Context, startDate, endDate time.Time) ([]domain.WeatherDay, error) {
	query, args, err := squirrel.
		Select(
			"forecast_date",
			"temperature_2m_max",
			"temperature_2m_min",
			"precipitation_sum",
			"sunshine_hours",
			"wind_speed_10m_max",
			"cloud_cover_mean",
			"weathercode",
		).
		Options("DISTINCT ON (forecast_date)").
		From("weather_forecasts").
		Where(squirrel.GtOrEq{"forecast_date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"forecast_date": endDate.Format("2006-01-02")}).
		OrderBy("forecast_date", "forecast_created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	days := make([]domain.WeatherDay, 0)
	for rows.Next() {
		var day domain.WeatherDay
		err := rows.Scan(
			&day.Date,
			&day.TempMax,
			&day.TempMin,
			&day.PrecipitationSum,
			&day.SunshineHours,
			&day.WindSpeedMax,
			&day.CloudCoverMean,
			&day.WeatherCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weather day: %w", err)
		}
		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return days, nil
}
