package teburio

import (
	"context"
	"fmt"
	"sort"
	"time"

	teburiodomain "github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/teburio/domain"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/teburio/teburioclient"
	"github.com/nbohlen/walkin-forecast-api/internal/config"
	"github.com/nbohlen/walkin-forecast-api/internal/domain"
	"github.com/nbohlen/walkin-forecast-api/pkg/log"
	"github.com/nbohlen/walkin-forecast-api/pkg/utils"
)

const sourceWidget = "widget"

type TeburioIntegrator interface {
	FetchBookings(ctx context.Context, startDate, endDate time.Time) ([]*domain.Booking, error)
	BuildSnapshots(ctx context.Context, snapshotDate time.Time, horizonDays int) ([]*domain.BookingSnapshot, error)
}

type TeburioService struct {
	cfg      *config.Config
	Client   teburioclient.Client
	location *time.Location
}

func New(cfg *config.Config, client teburioclient.Client) (TeburioIntegrator, error) {
	location, err := time.LoadLocation(cfg.Weather.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Weather.Timezone, err)
	}

	return &TeburioService{
		cfg:      cfg,
		Client:   client,
		location: location,
	}, nil
}

// FetchBookings pulls every booking whose date falls inside the window and
// converts the payload into persisted bookings. Both bounds are inclusive,
// interpreted as whole days in the restaurant's timezone.
func (s *TeburioService) FetchBookings(ctx context.Context, startDate, endDate time.Time) ([]*domain.Booking, error) {
	params := teburioclient.BookingsAnalyticsParams{
		StartDate: s.dayStart(startDate),
		EndDate:   s.dayEnd(endDate),
	}

	result, err := s.Client.BookingsAnalytics(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
		"pages":      result.Pages,
	}).Infof("Fetched %d bookings", len(result.Bookings))

	bookings := make([]*domain.Booking, 0, len(result.Bookings))
	for i := range result.Bookings {
		bookings = append(bookings, result.Bookings[i].ToBooking(s.location))
	}

	return bookings, nil
}

// BuildSnapshots fetches the live booking state for the window snapshot date
// to snapshot date + horizon and rolls it up per target day. The snapshot
// series records how demand for a date built up over time.
func (s *TeburioService) BuildSnapshots(ctx context.Context, snapshotDate time.Time, horizonDays int) ([]*domain.BookingSnapshot, error) {
	endDate := snapshotDate.AddDate(0, 0, horizonDays)

	params := teburioclient.BookingsAnalyticsParams{
		StartDate: s.dayStart(snapshotDate),
		EndDate:   s.dayEnd(endDate),
	}

	result, err := s.Client.BookingsAnalytics(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for snapshot: %w", err)
	}

	perDay := make(map[time.Time]*domain.BookingSnapshot)
	for i := range result.Bookings {
		s.accumulate(perDay, snapshotDate, &result.Bookings[i])
	}

	snapshots := make([]*domain.BookingSnapshot, 0, len(perDay))
	for _, snapshot := range perDay {
		snapshots = append(snapshots, snapshot)
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].ForecastDate.Before(snapshots[j].ForecastDate)
	})

	log.ForContext(ctx).Infof("Built %d booking snapshots from %d bookings",
		len(snapshots), len(result.Bookings))

	return snapshots, nil
}

func (s *TeburioService) accumulate(perDay map[time.Time]*domain.BookingSnapshot, snapshotDate time.Time, raw *teburiodomain.AnalyticsBooking) {
	booking := raw.ToBooking(s.location)
	day := utils.Midnight(booking.BookingDate)

	snapshot, ok := perDay[day]
	if !ok {
		snapshot = &domain.BookingSnapshot{
			SnapshotDate: utils.Midnight(snapshotDate),
			ForecastDate: day,
		}
		perDay[day] = snapshot
	}

	snapshot.Reservations++

	if booking.Confirmed() {
		snapshot.ConfirmedPeople += booking.People

		switch {
		case booking.Source != nil && *booking.Source == sourceWidget:
			snapshot.OnlinePeople += booking.People
		case booking.WalkIn:
			snapshot.WalkinPeople += booking.People
		case booking.Source == nil:
			snapshot.InternalPeople += booking.People
		}
	}

	if booking.Cancelled {
		snapshot.CancelledPeople += booking.People
	}
}

func (s *TeburioService) dayStart(date time.Time) string {
	t := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location)
	return t.Format(time.RFC3339)
}

func (s *TeburioService) dayEnd(date time.Time) string {
	t := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, s.location)
	return t.Format(time.RFC3339)
}
