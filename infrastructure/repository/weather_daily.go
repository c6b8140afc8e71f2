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

type WeatherDailyRepository interface {
	SaveBatch(ctx context.Context, days []*domain.WeatherDaily) error
	GetRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.WeatherDaily, error)
}

type weatherDailyRepository struct {
	conn *postgres.Connection
}

func NewWeatherDailyRepository(conn *postgres.Connection) WeatherDailyRepository {
	return &weatherDailyRepository{
		conn: conn,
	}
}

// SaveBatch upserts observed daily aggregates in a single transaction,
// keyed by calendar date. Re-importing a date refines the row in place,
// which is how archive backfills overwrite forecast-derived snapshots.
func (r *weatherDailyRepository) SaveBatch(ctx context.Context, days []*domain.WeatherDaily) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, day := range days {
			if err := r.upsert(ctx, tx, day); err != nil {
				return fmt.Errorf("failed to upsert daily weather for %s: %w",
					day.Date.Format("2006-01-02"), err)
			}
		}
		return nil
	})
}

func (r *weatherDailyRepository) upsert(ctx context.Context, tx *sql.Tx, day *domain.WeatherDaily) error {
	query := squirrel.StatementBuilder.
		Insert("weather_daily").
		Columns(
			"date", "location", "temperature_max", "temperature_min",
			"temperature_mean", "precipitation_sum", "precipitation_hours",
			"humidity_mean", "wind_speed_max", "pressure_msl_mean",
			"sunshine_hours", "cloud_cover_mean", "weathercode", "data_source",
		).
		Values(
			day.Date.Format("2006-01-02"),
			day.Location,
			day.TempMax,
			day.TempMin,
			day.TempMean,
			day.PrecipitationSum,
			day.PrecipitationHours,
			day.Humidity,
			day.WindSpeedMax,
			day.PressureMSL,
			day.SunshineHours,
			day.CloudCoverMean,
			day.WeatherCode,
			day.DataSource,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				location = EXCLUDED.location,
				temperature_max = EXCLUDED.temperature_max,
				temperature_min = EXCLUDED.temperature_min,
				temperature_mean = EXCLUDED.temperature_mean,
				precipitation_sum = EXCLUDED.precipitation_sum,
				precipitation_hours = EXCLUDED.precipitation_hours,
				humidity_mean = EXCLUDED.humidity_mean,
				wind_speed_max = EXCLUDED.wind_speed_max,
				pressure_msl_mean = EXCLUDED.pressure_msl_mean,
				sunshine_hours = EXCLUDED.sunshine_hours,
				cloud_cover_mean = EXCLUDED.cloud_cover_mean,
				weathercode = EXCLUDED.weathercode,
				data_source = EXCLUDED.data_source,
				updated_at = NOW()
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

func (r *weatherDailyRepository) GetRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.WeatherDaily, error) {
	query, args, err := squirrel.
		Select(
			"date", "location", "temperature_max", "temperature_min",
			"temperature_mean", "precipitation_sum", "precipitation_hours",
			"humidity_mean", "wind_speed_max", "pressure_msl_mean",
			"sunshine_hours", "cloud_cover_mean", "weathercode", "data_source",
		).
		From("weather_daily").
		Where(squirrel.GtOrEq{"date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": endDate.Format("2006-01-02")}).
		OrderBy("date ASC").
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

	days := make([]*domain.WeatherDaily, 0)
	for rows.Next() {
		day := &domain.WeatherDaily{}
		err := rows.Scan(
			&day.Date,
			&day.Location,
			&day.TempMax,
			&day.TempMin,
			&day.TempMean,
			&day.PrecipitationSum,
			&day.PrecipitationHours,
			&day.Humidity,
			&day.WindSpeedMax,
			&day.PressureMSL,
			&day.SunshineHours,
			&day.CloudCoverMean,
			&day.WeatherCode,
			&day.DataSource,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily weather: %w", err)
		}
		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return days, nil
}
