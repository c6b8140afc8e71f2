package teburio

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	teburiodomain "github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/teburio/domain"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/teburio/teburioclient"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/teburio/teburioclient/mocks"
	"github.com/nbohlen/walkin-forecast-api/internal/config"
)

func teburioTestConfig() *config.Config {
	return &config.Config{
		Weather: config.Weather{
			Timezone: "Europe/Berlin",
		},
	}
}

func berlin(t *testing.T) *time.Location {
	t.Helper()

	location, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return location
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func epochMillis(t time.Time) int64 { return t.UnixMilli() }

func TestNewRejectsUnknownTimezone(t *testing.T) {
	cfg := teburioTestConfig()
	cfg.Weather.Timezone = "Mars/Olympus"

	integrator, err := New(cfg, nil)

	require.Error(t, err)
	assert.Nil(t, integrator)
}

func TestFetchBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator, err := New(teburioTestConfig(), client)
	require.NoError(t, err)

	loc := berlin(t)
	dinner := time.Date(2024, time.June, 10, 19, 0, 0, 0, loc)

	client.EXPECT().
		BookingsAnalytics(gomock.Any(), teburioclient.BookingsAnalyticsParams{
			StartDate: "2024-06-10T00:00:00+02:00",
			EndDate:   "2024-06-12T23:59:59+02:00",
		}).
		Return(teburioclient.BookingsAnalyticsResult{
			Bookings: []teburiodomain.AnalyticsBooking{
				{
					ID:     "b-1",
					Date:   epochMillis(dinner),
					People: 4,
					WalkIn: boolPtr(true),
				},
				{
					ID:        "b-2",
					Date:      epochMillis(dinner.Add(time.Hour)),
					People:    2,
					Cancelled: boolPtr(true),
					Source:    strPtr("widget"),
				},
			},
			Count: 2,
			Pages: 1,
		}, nil)

	bookings, err := integrator.FetchBookings(context.Background(),
		time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, "b-1", bookings[0].ID)
	assert.True(t, bookings[0].BookingDate.Equal(dinner))
	assert.True(t, bookings[0].WalkIn)
	assert.False(t, bookings[0].Cancelled, "null status flags default to false")
	assert.Equal(t, []string{}, bookings[0].TagIDs)

	assert.True(t, bookings[1].Cancelled)
	require.NotNil(t, bookings[1].Source)
	assert.Equal(t, "widget", *bookings[1].Source)
}

func TestFetchBookingsClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator, err := New(teburioTestConfig(), client)
	require.NoError(t, err)

	client.EXPECT().
		BookingsAnalytics(gomock.Any(), gomock.Any()).
		Return(teburioclient.BookingsAnalyticsResult{}, errors.New("api unreachable"))

	bookings, err := integrator.FetchBookings(context.Background(), time.Now(), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch bookings")
	assert.Nil(t, bookings)
}

func TestBuildSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator, err := New(teburioTestConfig(), client)
	require.NoError(t, err)

	loc := berlin(t)
	day0 := time.Date(2024, time.June, 10, 18, 0, 0, 0, loc)
	day1 := time.Date(2024, time.June, 11, 18, 0, 0, 0, loc)

	client.EXPECT().
		BookingsAnalytics(gomock.Any(), gomock.Any()).
		Return(teburioclient.BookingsAnalyticsResult{
			Bookings: []teburiodomain.AnalyticsBooking{
				// Day 0: one per channel plus a cancellation.
				{ID: "online", Date: epochMillis(day0), People: 4, Source: strPtr("widget")},
				{ID: "walkin", Date: epochMillis(day0), People: 2, WalkIn: boolPtr(true)},
				{ID: "internal", Date: epochMillis(day0), People: 3},
				{ID: "cancelled", Date: epochMillis(day0), People: 5, Cancelled: boolPtr(true)},
				// Day 1: a phone booking counts as confirmed without a
				// channel bucket; a no-show counts for neither.
				{ID: "phone", Date: epochMillis(day1), People: 6, Source: strPtr("phone")},
				{ID: "noshow", Date: epochMillis(day1), People: 7, NoShow: boolPtr(true)},
			},
			Count: 6,
			Pages: 1,
		}, nil)

	snapshotDate := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	snapshots, err := integrator.BuildSnapshots(context.Background(), snapshotDate, 60)

	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	first := snapshots[0]
	assert.True(t, first.ForecastDate.Equal(time.Date(2024, time.June, 10, 0, 0, 0, 0, loc)))
	assert.Equal(t, 4, first.Reservations)
	assert.Equal(t, 9, first.ConfirmedPeople)
	assert.Equal(t, 4, first.OnlinePeople)
	assert.Equal(t, 2, first.WalkinPeople)
	assert.Equal(t, 3, first.InternalPeople)
	assert.Equal(t, 5, first.CancelledPeople)

	second := snapshots[1]
	assert.True(t, second.ForecastDate.Equal(time.Date(2024, time.June, 11, 0, 0, 0, 0, loc)))
	assert.Equal(t, 2, second.Reservations)
	assert.Equal(t, 6, second.ConfirmedPeople)
	assert.Equal(t, 0, second.OnlinePeople)
	assert.Equal(t, 0, second.WalkinPeople)
	assert.Equal(t, 0, second.InternalPeople)
	assert.Equal(t, 0, second.CancelledPeople)
}
