package openmeteo

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/openmeteo/openmeteoclient"
	"github.com/nbohlen/walkin-forecast-api/infrastructure/integrator/openmeteo/openmeteoclient/mocks"
	"github.com/nbohlen/walkin-forecast-api/internal/config"
)

func weatherTestConfig() *config.Config {
	return &config.Config{
		Weather: config.Weather{
			ForecastDays: 16,
			Timezone:     "Europe/Berlin",
			LocationName: "Kiel",
		},
	}
}

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

func TestFetchForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(weatherTestConfig(), client)

	resp := &openmeteoclient.DailyResponse{}
	resp.Daily.Time = []string{"2024-06-10", "2024-06-11"}
	resp.Daily.TemperatureMax = []*float64{fptr(21.5), fptr(23)}
	resp.Daily.TemperatureMin = []*float64{fptr(13), fptr(14.5)}
	resp.Daily.PrecipitationSum = []*float64{fptr(0), nil}
	resp.Daily.PrecipitationProb = []*float64{fptr(10), fptr(40)}
	// Sunshine arrives in seconds; two hours on the first day.
	resp.Daily.SunshineDuration = []*float64{fptr(7200), fptr(36000)}
	resp.Daily.WindSpeedMax = []*float64{fptr(15), fptr(20)}
	resp.Daily.CloudCoverMean = []*float64{fptr(25), fptr(60)}
	resp.Daily.WeatherCode = []*int{iptr(1), iptr(61)}

	client.EXPECT().DailyForecast(gomock.Any(), 16).Return(resp, nil)

	forecastDate := time.Date(2024, time.June, 10, 5, 0, 0, 0, time.UTC)
	forecasts, err := integrator.FetchForecast(context.Background(), forecastDate)

	require.NoError(t, err)
	require.Len(t, forecasts, 2)

	first := forecasts[0]
	assert.Equal(t, forecastDate, first.ForecastCreatedAt)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), first.ForecastDate)
	assert.Equal(t, 1, first.DaysAhead)
	assert.Equal(t, 21.5, first.TempMax)
	assert.Equal(t, 2.0, first.SunshineHours)
	assert.Equal(t, 1, first.WeatherCode)

	second := forecasts[1]
	assert.Equal(t, 2, second.DaysAhead)
	assert.Equal(t, 0.0, second.PrecipitationSum, "null entries fall back to zero")
	assert.Equal(t, 10.0, second.SunshineHours)
}

func TestFetchForecastClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(weatherTestConfig(), client)

	client.EXPECT().DailyForecast(gomock.Any(), 16).Return(nil, errors.New("api down"))

	forecasts, err := integrator.FetchForecast(context.Background(), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch weather forecast")
	assert.Nil(t, forecasts)
}

func TestFetchHistorical(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(weatherTestConfig(), client)

	start := time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	resp := &openmeteoclient.DailyResponse{}
	resp.Daily.Time = []string{"2024-06-09", "2024-06-10"}
	resp.Daily.TemperatureMax = []*float64{fptr(19), nil}
	resp.Daily.TemperatureMin = []*float64{fptr(11), nil}
	resp.Daily.PrecipitationSum = []*float64{fptr(3.2), nil}
	resp.Daily.PrecipitationHours = []*float64{fptr(4), nil}
	resp.Daily.SunshineDuration = []*float64{fptr(18000), nil}
	resp.Daily.WindSpeedMaxLegacy = []*float64{fptr(22), nil}
	resp.Daily.PressureMSLMean = []*float64{fptr(1009.5), nil}
	resp.Daily.CloudCoverMeanLegacy = []*float64{fptr(85), nil}
	resp.Daily.HumidityMean = []*float64{fptr(64), nil}
	resp.Daily.WeatherCode = []*int{iptr(61), nil}

	client.EXPECT().HistoricalDaily(gomock.Any(), start, end).Return(resp, nil)

	days, err := integrator.FetchHistorical(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, days, 2)

	observed := days[0]
	assert.Equal(t, start, observed.Date)
	assert.Equal(t, "Kiel", observed.Location)
	require.NotNil(t, observed.TempMax)
	assert.Equal(t, 19.0, *observed.TempMax)
	assert.Equal(t, 5.0, observed.SunshineHours)
	assert.Equal(t, 64.0, observed.Humidity)
	assert.Equal(t, 1009.5, observed.PressureMSL)
	assert.Equal(t, 85.0, observed.CloudCoverMean)
	assert.Equal(t, 61, observed.WeatherCode)
	assert.Equal(t, "openmeteo", observed.DataSource)

	// The archive gap gets neutral defaults instead of breaking the import.
	gap := days[1]
	assert.Nil(t, gap.TempMax)
	assert.Equal(t, 70.0, gap.Humidity)
	assert.Equal(t, 1013.0, gap.PressureMSL)
	assert.Equal(t, 50.0, gap.CloudCoverMean)
	assert.Equal(t, 1, gap.WeatherCode)
	assert.Equal(t, 0.0, gap.PrecipitationSum)
}

func TestFetchHistoricalClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(weatherTestConfig(), client)

	client.EXPECT().HistoricalDaily(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("api down"))

	days, err := integrator.FetchHistorical(context.Background(), time.Now(), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch historical weather")
	assert.Nil(t, days)
}
