package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nbohlen/walkin-forecast-api/infrastructure/database/postgres"
	"github.com/nbohlen/walkin-forecast-api/internal/domain"
)

type DashboardRepository interface {
	GetDays(ctx context.Context, modelName string, startDate time.Time, days int) ([]*domain.DashboardDay, error)
}

type dashboardRepository struct {
	conn *postgres.Connection
}

func NewDashboardRepository(conn *postgres.Connection) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

// Three-way join behind the dashboard: predictions drive the spine,
// reservations and the latest weather poll attach per date. Squirrel has no
// CTE support, so this one stays raw SQL.
const dashboardDaysQuery = `
	WITH res_data AS (
		SELECT
			DATE(booking_date) AS target_date,
			COUNT(*) AS reservations_count,
			COALESCE(SUM(people), 0) AS reservations_people
		FROM bookings
		WHERE cancelled = false
		  AND no_show = false
		  AND walk_in = false
		GROUP BY DATE(booking_date)
	),
	latest_weather AS (
		SELECT DISTINCT ON (forecast_date)
			forecast_date,
			temperature_2m_max,
			precipitation_sum,
			sunshine_hours,
			weathercode
		FROM weather_forecasts
		ORDER BY forecast_date, forecast_created_at DESC
	)
	SELECT
		wf.target_date,
		wf.pred_walkins,
		COALESCE(rd.reservations_people, 0) AS reservations_people,
		COALESCE(rd.reservations_count, 0) AS reservations_count,
		COALESCE(lw.temperature_2m_max, 0) AS temperature_2m_max,
		COALESCE(lw.precipitation_sum, 0) AS precipitation_sum,
		COALESCE(lw.sunshine_hours, 0) AS sunshine_hours,
		COALESCE(lw.weathercode, 0) AS weathercode
	FROM walkin_forecasts wf
	LEFT JOIN res_data rd ON rd.target_date = wf.target_date
	LEFT JOIN latest_weather lw ON lw.forecast_date = wf.target_date
	WHERE wf.model_name = $1
	  AND wf.target_date >= $2
	  AND wf.target_date < $3
	ORDER BY wf.target_date ASC
`

func (r *dashboardRepository) GetDays(ctx context.Context, modelName string, startDate time.Time, days int) ([]*domain.DashboardDay, error) {
	endDate := startDate.AddDate(0, 0, days)

	rows, err := r.conn.Query(
		dashboardDaysQuery,
		modelName,
		startDate.Format("2006-01-02"),
		endDate.Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.DashboardDay, 0)
	for rows.Next() {
		day := &domain.DashboardDay{}
		err := rows.Scan(
			&day.Date,
			&day.PredWalkins,
			&day.ReservationsPeople,
			&day.ReservationsCount,
			&day.TempMax,
			&day.PrecipitationSum,
			&day.SunshineHours,
			&day.WeatherCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dashboard day: %w", err)
		}
		result = append(result, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return result, nil
}
