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

type BookingSnapshotRepository interface {
	SaveBatch(ctx context.Context, snapshots []*domain.BookingSnapshot) error
	GetBySnapshotDate(ctx context.Context, snapshotDate time.Time) ([]*domain.BookingSnapshot, error)
}

type bookingSnapshotRepository struct {
	conn *postgres.Connection
}

func NewBookingSnapshotRepository(conn *postgres.Connection) BookingSnapshotRepository {
	return &bookingSnapshotRepository{
		conn: conn,
	}
}

// SaveBatch upserts one snapshot run in a single transaction. A re-run for
// the same (snapshot date, target date) pair overwrites the previous row.
func (r *bookingSnapshotRepository) SaveBatch(ctx context.Context, snapshots []*domain.BookingSnapshot) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, snapshot := range snapshots {
			if err := r.upsert(ctx, tx, snapshot); err != nil {
				return fmt.Errorf("failed to upsert snapshot for %s: %w",
					snapshot.ForecastDate.Format("2006-01-02"), err)
			}
		}
		return nil
	})
}

func (r *bookingSnapshotRepository) upsert(ctx context.Context, tx *sql.Tx, snapshot *domain.BookingSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("booking_snapshots").
		Columns(
			"snapshot_created_at", "forecast_date", "reservations",
			"confirmed_people", "cancelled_people", "online_people",
			"internal_people", "walk_in_people",
		).
		Values(
			snapshot.SnapshotDate.Format("2006-01-02"),
			snapshot.ForecastDate.Format("2006-01-02"),
			snapshot.Reservations,
			snapshot.ConfirmedPeople,
			snapshot.CancelledPeople,
			snapshot.OnlinePeople,
			snapshot.InternalPeople,
			snapshot.WalkinPeople,
		).
		Suffix(`
			ON CONFLICT (snapshot_created_at, forecast_date) DO UPDATE SET
				reservations = EXCLUDED.reservations,
				confirmed_people = EXCLUDED.confirmed_people,
				cancelled_people = EXCLUDED.cancelled_people,
				online_people = EXCLUDED.online_people,
				internal_people = EXCLUDED.internal_people,
				walk_in_people = EXCLUDED.walk_in_people,
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

func (r *bookingSnapshotRepository) GetBySnapshotDate(ctx context.Context, snapshotDate time.Time) ([]*domain.BookingSnapshot, error) {
	query, args, err := squirrel.
		Select(
			"snapshot_created_at", "forecast_date", "reservations",
			"confirmed_people", "cancelled_people", "online_people",
			"internal_people", "walk_in_people", "created_at",
		).
		From("booking_snapshots").
		Where(squirrel.Eq{"snapshot_created_at": snapshotDate.Format("2006-01-02")}).
		OrderBy("forecast_date ASC").
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

	snapshots := make([]*domain.BookingSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.BookingSnapshot{}
		err := rows.Scan(
			&snapshot.SnapshotDate,
			&snapshot.ForecastDate,
			&snapshot.Reservations,
			&snapshot.ConfirmedPeople,
			&snapshot.CancelledPeople,
			&snapshot.OnlinePeople,
			&snapshot.InternalPeople,
			&snapshot.WalkinPeople,
			&snapshot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return snapshots, nil
}
