package openmeteoclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbohlen/walkin-forecast-api/internal/config"
)

func newTestClient(forecastURL, archiveURL string) *OpenMeteoClient {
	return &OpenMeteoClient{
		httpClient: http.DefaultClient,
		config: &config.Config{
			Weather: config.Weather{
				ForecastURL: forecastURL,
				ArchiveURL:  archiveURL,
				Latitude:    54.3233,
				Longitude:   10.1228,
				Timezone:    "Europe/Berlin",
			},
		},
	}
}

func TestDailyForecast(t *testing.T) {
	var query url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		fmt.Fprint(w, `{"daily":{
			"time": ["2024-06-10"],
			"temperature_2m_max": [21.5],
			"temperature_2m_min": [13.0],
			"precipitation_sum": [null],
			"sunshine_duration": [28800.0],
			"wind_speed_10m_max": [15.2],
			"cloud_cover_mean": [30.0],
			"weathercode": [2]
		}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	resp, err := client.DailyForecast(context.Background(), 16)

	require.NoError(t, err)
	assert.Equal(t, "54.3233", query.Get("latitude"))
	assert.Equal(t, "10.1228", query.Get("longitude"))
	assert.Equal(t, "16", query.Get("forecast_days"))
	assert.Equal(t, "Europe/Berlin", query.Get("timezone"))
	assert.Contains(t, query.Get("daily"), "sunshine_duration")
	assert.Contains(t, query.Get("daily"), "wind_speed_10m_max")

	require.Len(t, resp.Daily.Time, 1)
	require.NotNil(t, resp.Daily.TemperatureMax[0])
	assert.Equal(t, 21.5, *resp.Daily.TemperatureMax[0])
	assert.Nil(t, resp.Daily.PrecipitationSum[0])
	require.NotNil(t, resp.Daily.WeatherCode[0])
	assert.Equal(t, 2, *resp.Daily.WeatherCode[0])
}

func TestHistoricalDaily(t *testing.T) {
	var query url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		fmt.Fprint(w, `{"daily":{
			"time": ["2024-06-09"],
			"windspeed_10m_max": [22.0],
			"cloudcover_mean": [85.0],
			"relative_humidity_2m_mean": [64.0]
		}}`)
	}))
	defer server.Close()

	client := newTestClient("", server.URL)

	start := time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)
	resp, err := client.HistoricalDaily(context.Background(), start, start)

	require.NoError(t, err)
	assert.Equal(t, "2024-06-09", query.Get("start_date"))
	assert.Equal(t, "2024-06-09", query.Get("end_date"))

	// The archive still uses the older parameter spellings.
	assert.Contains(t, query.Get("daily"), "windspeed_10m_max")
	assert.Contains(t, query.Get("daily"), "cloudcover_mean")

	require.NotNil(t, resp.Daily.WindSpeedMaxLegacy[0])
	assert.Equal(t, 22.0, *resp.Daily.WindSpeedMaxLegacy[0])
	require.NotNil(t, resp.Daily.CloudCoverMeanLegacy[0])
	assert.Equal(t, 85.0, *resp.Daily.CloudCoverMeanLegacy[0])
}

func TestDailyForecastHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	_, err := client.DailyForecast(context.Background(), 16)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
