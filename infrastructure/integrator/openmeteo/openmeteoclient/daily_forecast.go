package openmeteoclient

import (
	"context"
	"fmt"
	"strconv"
)

// DailyForecast fetches the daily forecast for the configured coordinates,
// up to forecastDays days ahead including today.
func (c *OpenMeteoClient) DailyForecast(ctx context.Context, forecastDays int) (*DailyResponse, error) {
	query := map[string]string{
		"latitude":  formatCoordinate(c.config.Weather.Latitude),
		"longitude": formatCoordinate(c.config.Weather.Longitude),
		"daily": "temperature_2m_max,temperature_2m_min,precipitation_sum," +
			"precipitation_probability_mean,sunshine_duration,wind_speed_10m_max," +
			"cloud_cover_mean,weathercode,apparent_temperature_max,apparent_temperature_min",
		"forecast_days": strconv.Itoa(forecastDays),
		"timezone":      c.config.Weather.Timezone,
	}

	resp, err := c.get(ctx, c.config.Weather.ForecastURL, query)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}

	return resp, nil
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
