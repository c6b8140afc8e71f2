package reporting

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
	"github.com/nbohlen/walkin-forecast-api/internal/usecases/staffing"
)

type reportingMocks struct {
	dashboardRepo *mocks.MockDashboardRepository
	snapshotRepo  *mocks.MockBookingSnapshotRepository
	forecastRepo  *mocks.MockWalkinForecastRepository
}

func newTestService(ctrl *gomock.Controller) (Service, *reportingMocks) {
	m := &reportingMocks{
		dashboardRepo: mocks.NewMockDashboardRepository(ctrl),
		snapshotRepo:  mocks.NewMockBookingSnapshotRepository(ctrl),
		forecastRepo:  mocks.NewMockWalkinForecastRepository(ctrl),
	}

	cfg := &config.Config{
		Model: config.Model{
			Name: "ridge_v1",
		},
		Staffing: config.Staffing{
			Capacity: 350,
		},
	}

	return NewService(cfg, m.dashboardRepo, m.snapshotRepo, m.forecastRepo), m
}

func TestStaffingPlan(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		row      *domain.DashboardDay
		validate func(t *testing.T, day *ForecastDay)
	}{
		{
			name: "friday counts as weekend",
			date: time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
			row: &domain.DashboardDay{
				Date:               time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
				PredWalkins:        80,
				ReservationsPeople: 130,
				ReservationsCount:  26,
				TempMax:            22.5,
				SunshineHours:      9,
				WeatherCode:        1,
			},
			validate: func(t *testing.T, day *ForecastDay) {
				assert.True(t, day.IsWeekend)
				assert.Equal(t, "Fr 14.06.", day.DisplayDate)
				assert.Equal(t, 210, day.TotalGuests)
				assert.Equal(t, 0.6, day.Utilization)

				require.NotNil(t, day.Staffing)
				assert.Equal(t, 210, day.Staffing.Guests)
				assert.True(t, day.Staffing.IsWeekend)
			},
		},
		{
			name: "tuesday is a weekday",
			date: time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
			row: &domain.DashboardDay{
				Date:               time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
				PredWalkins:        30,
				ReservationsPeople: 120,
				ReservationsCount:  24,
			},
			validate: func(t *testing.T, day *ForecastDay) {
				assert.False(t, day.IsWeekend)
				assert.Equal(t, "Di 11.06.", day.DisplayDate)
				assert.Equal(t, 150, day.TotalGuests)
				assert.Equal(t, 0.43, day.Utilization)
			},
		},
		{
			name: "utilization clamps at full capacity",
			date: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			row: &domain.DashboardDay{
				Date:               time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
				PredWalkins:        120,
				ReservationsPeople: 300,
				ReservationsCount:  55,
			},
			validate: func(t *testing.T, day *ForecastDay) {
				assert.Equal(t, 420, day.TotalGuests)
				assert.Equal(t, 1.0, day.Utilization)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl)
			m.dashboardRepo.EXPECT().
				GetDays(gomock.Any(), "ridge_v1", tc.date, 1).
				Return([]*domain.DashboardDay{tc.row}, nil)

			day, err := service.StaffingPlan(context.Background(), tc.date)

			require.NoError(t, err)
			tc.validate(t, day)
		})
	}
}

func TestStaffingPlanNoForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	m.dashboardRepo.EXPECT().
		GetDays(gomock.Any(), "ridge_v1", gomock.Any(), 1).
		Return(nil, nil)

	day, err := service.StaffingPlan(context.Background(), time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no forecast available for 2030-01-01")
	assert.Nil(t, day)
}

func TestForecastView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	service, m := newTestService(ctrl)
	m.dashboardRepo.EXPECT().
		GetDays(gomock.Any(), "ridge_v1", gomock.Any(), 21).
		Return([]*domain.DashboardDay{
			{Date: monday, PredWalkins: 40, ReservationsPeople: 90, ReservationsCount: 18},
			{Date: monday.AddDate(0, 0, 1), PredWalkins: 35, ReservationsPeople: 80, ReservationsCount: 16},
		}, nil)

	view, err := service.ForecastView(context.Background(), 21)

	require.NoError(t, err)
	require.Len(t, view, 2)

	assert.Equal(t, monday, view[0].Date)
	assert.Equal(t, "Mo 10.06.", view[0].DisplayDate)
	assert.Equal(t, 130, view[0].TotalGuests)
	assert.False(t, view[0].IsWeekend)
	require.NotNil(t, view[0].Staffing)
	assert.Equal(t, staffing.RoleKitchen, view[0].Staffing.Roles[0].Role)

	assert.Equal(t, "Di 11.06.", view[1].DisplayDate)
}

func TestForecastViewRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	m.dashboardRepo.EXPECT().
		GetDays(gomock.Any(), "ridge_v1", gomock.Any(), 21).
		Return(nil, errors.New("db down"))

	view, err := service.ForecastView(context.Background(), 21)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dashboard days")
	assert.Nil(t, view)
}

func TestSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotDate := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	service, m := newTestService(ctrl)
	m.snapshotRepo.EXPECT().
		GetBySnapshotDate(gomock.Any(), snapshotDate).
		Return([]*domain.BookingSnapshot{
			{SnapshotDate: snapshotDate, ForecastDate: snapshotDate, Reservations: 12},
		}, nil)

	snapshots, err := service.Snapshots(context.Background(), snapshotDate.Add(9*time.Hour))

	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, 12, snapshots[0].Reservations)
}

func TestRawPredictions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	service, m := newTestService(ctrl)
	m.forecastRepo.EXPECT().
		GetFromDate(gomock.Any(), "ridge_v1", from).
		Return([]*domain.WalkinForecast{
			{TargetDate: from, PredWalkins: 42, ModelName: "ridge_v1"},
		}, nil)

	predictions, err := service.RawPredictions(context.Background(), from)

	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, 42.0, predictions[0].PredWalkins)
}
