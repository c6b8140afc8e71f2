package openmeteoclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nbohlen/walkin-forecast-api/internal/config"
)

type Client interface {
	DailyForecast(ctx context.Context, forecastDays int) (*DailyResponse, error)
	HistoricalDaily(ctx context.Context, startDate, endDate time.Time) (*DailyResponse, error)
}

type OpenMeteoClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenMeteoClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// DailyResponse is the shared shape of the forecast and archive endpoints:
// parallel per-day arrays under "daily". Fields absent from a request stay
// nil; single days can be null when the archive has a gap.
type DailyResponse struct {
	Daily struct {
		Time                 []string   `json:"time"`
		TemperatureMax       []*float64 `json:"temperature_2m_max"`
		TemperatureMin       []*float64 `json:"temperature_2m_min"`
		PrecipitationSum     []*float64 `json:"precipitation_sum"`
		PrecipitationProb    []*float64 `json:"precipitation_probability_mean"`
		PrecipitationHours   []*float64 `json:"precipitation_hours"`
		SunshineDuration     []*float64 `json:"sunshine_duration"`
		WindSpeedMax         []*float64 `json:"wind_speed_10m_max"`
		WindSpeedMaxLegacy   []*float64 `json:"windspeed_10m_max"`
		CloudCoverMean       []*float64 `json:"cloud_cover_mean"`
		CloudCoverMeanLegacy []*float64 `json:"cloudcover_mean"`
		WeatherCode          []*int     `json:"weathercode"`
		ApparentTempMax      []*float64 `json:"apparent_temperature_max"`
		ApparentTempMin      []*float64 `json:"apparent_temperature_min"`
		PressureMSLMean      []*float64 `json:"pressure_msl_mean"`
		HumidityMean         []*float64 `json:"relative_humidity_2m_mean"`
	} `json:"daily"`
}

func (c *OpenMeteoClient) get(ctx context.Context, endpoint string, query map[string]string) (*DailyResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	for key, value := range query {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status: %s", resp.Status)
	}

	var decoded DailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &decoded, nil
}
