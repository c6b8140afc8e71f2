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

type WalkinForecastRepository interface {
	SaveBatch(ctx context.Context, forecasts []*domain.WalkinForecast) error
	GetFromDate(ctx context.Context, modelName string, startDate time.Time) ([]*domain.WalkinForecast, error)
}

type walkinForecastRepository struct {
	conn *postgres.Connection
}

func NewWalkinForecastRepository(conn *postgres.Connection) WalkinForecastRepository {
	return &walkinForecastRepository{
		conn: conn,
	}
}

// SaveBatch upserts one prediction run in a single transaction, keyed by
// (target date, model name). Later runs for the same date replace earlier
// ones; only the latest prediction per date survives.
func (r *walkinForecastRepository) SaveBatch(ctx context.Context, forecasts []*domain.WalkinForecast) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, forecast := range forecasts {
			if err := r.upsert(ctx, tx, forecast); err != nil {
				return fmt.Errorf("failed to upsert walk-in forecast for %s: %w",
					forecast.TargetDate.Format("2006-01-02"), err)
			}
		}
		return nil
	})
}

func (r *walkinForecastRepository) upsert(ctx context.Context, tx *sql.Tx, forecast *domain.WalkinForecast) error {
	query := squirrel.StatementBuilder.
		Insert("walkin_forecasts").
		Columns("target_date", "pred_walkins", "model_name", "run_at").
		Values(
			forecast.TargetDate.Format("2006-01-02"),
			forecast.PredWalkins,
			forecast.ModelName,
			forecast.RunAt,
		).
		Suffix(`
			ON CONFLICT (target_date, model_name) DO UPDATE SET
				pred_walkins = EXCLUDED.pred_walkins,
				run_at = EXCLUDED.run_at
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

func (r *walkinForecastRepository) GetFromDate(ctx context.Context, modelName string, startDate time.Time) ([]*domain.WalkinForecast, error) {
	query, args, err := squirrel.
		Select("target_date", "pred_walkins", "model_name", "run_at").
		From("walkin_forecasts").
		Where(squirrel.Eq{"model_name": modelName}).
		Where(squirrel.GtOrEq{"target_date": startDate.Format("2006-01-02")}).
		OrderBy("target_date ASC").
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

	forecasts := make([]*domain.WalkinForecast, 0)
	for rows.Next() {
		forecast := &domain.WalkinForecast{}
		err := rows.Scan(
			&forecast.TargetDate,
			&forecast.PredWalkins,
			&forecast.ModelName,
			&forecast.RunAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan walk-in forecast: %w", err)
		}
		forecasts = append(forecasts, forecast)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return forecasts, nil
}
