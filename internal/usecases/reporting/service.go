package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/nbohlen/walkin-forecast-api/infrastructure/repository"
	"github.com/nbohlen/walkin-forecast-api/internal/config"
	"github.com/nbohlen/walkin-forecast-api/internal/domain"
	"github.com/nbohlen/walkin-forecast-api/internal/usecases/staffing"
	"github.com/nbohlen/walkin-forecast-api/pkg/utils"
)

// German weekday abbreviations, Monday first. The dashboard audience reads
// German.
var weekdayLabels = [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}

// ForecastDay is one dashboard row: demand forecast, weather and the derived
// staffing plan.
type ForecastDay struct {
	Date               time.Time      `json:"date"`
	DisplayDate        string         `json:"display_date"`
	PredWalkins        int            `json:"pred_walkins"`
	ReservationsPeople int            `json:"reservations_people"`
	ReservationsCount  int            `json:"reservations_count"`
	TotalGuests        int            `json:"total_guests"`
	TempMax            float64        `json:"temp_max"`
	PrecipitationSum   float64        `json:"precipitation_sum"`
	SunshineHours      float64        `json:"sunshine_hours"`
	WeatherCode        int            `json:"weathercode"`
	IsWeekend          bool           `json:"is_weekend"`
	Utilization        float64        `json:"utilization"`
	Staffing           *staffing.Plan `json:"staffing"`
}

type Service interface {
	ForecastView(ctx context.Context, days int) ([]*ForecastDay, error)
	StaffingPlan(ctx context.Context, date time.Time) (*ForecastDay, error)
	Snapshots(ctx context.Context, snapshotDate time.Time) ([]*domain.BookingSnapshot, error)
	RawPredictions(ctx context.Context, from time.Time) ([]*domain.WalkinForecast, error)
}

type service struct {
	cfg           *config.Config
	dashboardRepo repository.DashboardRepository
	snapshotRepo  repository.BookingSnapshotRepository
	forecastRepo  repository.WalkinForecastRepository
}

func NewService(
	cfg *config.Config,
	dashboardRepo repository.DashboardRepository,
	snapshotRepo repository.BookingSnapshotRepository,
	forecastRepo repository.WalkinForecastRepository,
) Service {
	return &service{
		cfg:           cfg,
		dashboardRepo: dashboardRepo,
		snapshotRepo:  snapshotRepo,
		forecastRepo:  forecastRepo,
	}
}

// ForecastView returns the next N days starting today, each with its
// staffing plan and capacity utilization.
func (s *service) ForecastView(ctx context.Context, days int) ([]*ForecastDay, error) {
	today := utils.Midnight(time.Now())

	rows, err := s.dashboardRepo.GetDays(ctx, s.cfg.Model.Name, today, days)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard days")
	}

	result := make([]*ForecastDay, 0, len(rows))
	for _, row := range rows {
		result = append(result, s.buildDay(row.Date, row.PredWalkins, row.ReservationsPeople,
			row.ReservationsCount, row.TempMax, row.PrecipitationSum, row.SunshineHours, row.WeatherCode))
	}

	return result, nil
}

// StaffingPlan returns the plan for a single date, or an error when no
// prediction exists for it yet.
func (s *service) StaffingPlan(ctx context.Context, date time.Time) (*ForecastDay, error) {
	day := utils.Midnight(date)

	rows, err := s.dashboardRepo.GetDays(ctx, s.cfg.Model.Name, day, 1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard day")
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("no forecast available for %s", day.Format(time.DateOnly))
	}

	row := rows[0]
	return s.buildDay(row.Date, row.PredWalkins, row.ReservationsPeople,
		row.ReservationsCount, row.TempMax, row.PrecipitationSum, row.SunshineHours, row.WeatherCode), nil
}

// Snapshots returns the demand snapshot series taken on the given date, one
// row per target day. The BI layer reads these to track booking velocity.
func (s *service) Snapshots(ctx context.Context, snapshotDate time.Time) ([]*domain.BookingSnapshot, error) {
	snapshots, err := s.snapshotRepo.GetBySnapshotDate(ctx, utils.Midnight(snapshotDate))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load booking snapshots")
	}

	return snapshots, nil
}

// RawPredictions returns the stored model outputs for the active model from
// the given date, without the dashboard join. Useful for auditing a run.
func (s *service) RawPredictions(ctx context.Context, from time.Time) ([]*domain.WalkinForecast, error) {
	forecasts, err := s.forecastRepo.GetFromDate(ctx, s.cfg.Model.Name, utils.Midnight(from))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load predictions")
	}

	return forecasts, nil
}

func (s *service) buildDay(
	date time.Time,
	predWalkins float64,
	reservationsPeople, reservationsCount int,
	tempMax, precipitationSum, sunshineHours float64,
	weatherCode int,
) *ForecastDay {
	totalGuests := reservationsPeople + int(predWalkins)

	// Operationally the weekend starts Friday; the bar band depends on it.
	weekday := utils.WeekdayIndex(date)
	isWeekend := weekday >= 4

	utilization := float64(totalGuests) / float64(s.cfg.Staffing.Capacity)
	if utilization > 1 {
		utilization = 1
	}

	return &ForecastDay{
		Date:               date,
		DisplayDate:        fmt.Sprintf("%s %s", weekdayLabels[weekday], date.Format("02.01.")),
		PredWalkins:        int(predWalkins),
		ReservationsPeople: reservationsPeople,
		ReservationsCount:  reservationsCount,
		TotalGuests:        totalGuests,
		TempMax:            tempMax,
		PrecipitationSum:   precipitationSum,
		SunshineHours:      sunshineHours,
		WeatherCode:        weatherCode,
		IsWeekend:          isWeekend,
		Utilization:        utils.RoundWithTwoDecimalPlace(utilization),
		Staffing:           staffing.PlanForDay(totalGuests, isWeekend),
	}
}
