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

type BookingRepository interface {
	SaveBatch(ctx context.Context, bookings []*domain.Booking) error
	Count(ctx context.Context) (int64, error)
	LatestBookingDate(ctx context.Context) (*time.Time, error)
	AggregateConfirmedPerDay(ctx context.Context, startDate, endDate time.Time) ([]domain.BookingDayAggregate, error)
	WalkinPeoplePerDay(ctx context.Context, startDate, before time.Time) ([]domain.WalkinDayAggregate, error)
}

type bookingRepository struct {
	conn *postgres.Connection
}

func NewBookingRepository(conn *postgres.Connection) BookingRepository {
	return &bookingRepository{
		conn: conn,
	}
}

// SaveBatch upserts all bookings of one fetch cycle inside a single
// transaction. A failing row rolls back the whole batch.
func (r *bookingRepository) SaveBatch(ctx context.Context, bookings []*domain.Booking) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, booking := range bookings {
			if err := r.upsert(ctx, tx, booking); err != nil {
				return fmt.Errorf("failed to upsert booking %s: %w", booking.ID, err)
			}
		}
		return nil
	})
}

func (r *bookingRepository) upsert(ctx context.Context, tx *sql.Tx, booking *domain.Booking) error {
	query := squirrel.StatementBuilder.
		Insert("bookings").
		Columns(
			"id", "booking_date", "end_date", "people", "cancelled", "no_show",
			"walk_in", "source", "host", "tracking", "tag_ids",
			"booking_tags_count", "payment", "rating",
		).
		Values(
			booking.ID,
			booking.BookingDate,
			booking.EndDate,
			booking.People,
			booking.Cancelled,
			booking.NoShow,
			booking.WalkIn,
			booking.Source,
			booking.Host,
			nullableJSON(booking.Tracking),
			pq.Array(booking.TagIDs),
			nullableJSON(booking.TagsCount),
			nullableJSON(booking.Payment),
			booking.Rating,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				booking_date = EXCLUDED.booking_date,
				end_date = EXCLUDED.end_date,
				people = EXCLUDED.people,
				cancelled = EXCLUDED.cancelled,
				no_show = EXCLUDED.no_show,
				walk_in = EXCLUDED.walk_in,
				source = EXCLUDED.source,
				host = EXCLUDED.host,
				tracking = EXCLUDED.tracking,
				tag_ids = EXCLUDED.tag_ids,
				booking_tags_count = EXCLUDED.booking_tags_count,
				payment = EXCLUDED.payment,
				rating = EXCLUDED.rating,
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

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("bookings").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) LatestBookingDate(ctx context.Context) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(booking_date)").
		From("bookings").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var latest sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&latest); err != nil {
		return nil, fmt.Errorf("failed to read latest booking date: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	return &latest.Time, nil
}

// AggregateConfirmedPerDay sums confirmed, non-walk-in reservations per day:
// count of bookings, total people and mean party size.
func (r *bookingRepository) AggregateConfirmedPerDay(ctx context.Context, startDate, endDate time.Time) ([]domain.BookingDayAggregate, error) {
	query, args, err := squirrel.
		Select(
			"DATE(booking_date) AS target_date",
			"COUNT(*) AS reservations_count",
			"COALESCE(SUM(people), 0) AS reservations_people",
			"COALESCE(AVG(people), 0) AS avg_reservation_size",
		).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"booking_date": endDate.Format("2006-01-02") + " 23:59:59"}).
		Where(squirrel.Eq{"cancelled": false, "no_show": false, "walk_in": false}).
		GroupBy("DATE(booking_date)").
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

	aggregates := make([]domain.BookingDayAggregate, 0)
	for rows.Next() {
		var agg domain.BookingDayAggregate
		if err := rows.Scan(&agg.Date, &agg.ReservationsCount, &agg.ReservationsPeople, &agg.AvgReservationSize); err != nil {
			return nil, fmt.Errorf("failed to scan booking aggregate: %w", err)
		}
		aggregates = append(aggregates, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return aggregates, nil
}

// WalkinPeoplePerDay sums realized walk-in guests per day, strictly before
// the given cutoff. Future walk-ins do not exist; they are the prediction
// target.
func (r *bookingRepository) WalkinPeoplePerDay(ctx context.Context, startDate, before time.Time) ([]domain.WalkinDayAggregate, error) {
	query, args, err := squirrel.
		Select(
			"DATE(booking_date) AS target_date",
			"COALESCE(SUM(people), 0) AS walkin_people",
		).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": startDate.Format("2006-01-02")}).
		Where(squirrel.Lt{"booking_date": before.Format("2006-01-02")}).
		Where(squirrel.Eq{"walk_in": true, "cancelled": false}).
		GroupBy("DATE(booking_date)").
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

	aggregates := make([]domain.WalkinDayAggregate, 0)
	for rows.Next() {
		var agg domain.WalkinDayAggregate
		if err := rows.Scan(&agg.Date, &agg.WalkinPeople); err != nil {
			return nil, fmt.Errorf("failed to scan walk-in aggregate: %w", err)
		}
		aggregates = append(aggregates, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return aggregates, nil
}

// nullableJSON keeps absent opaque blobs as SQL NULL instead of empty JSON.
func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
