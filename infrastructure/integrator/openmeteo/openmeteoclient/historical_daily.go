package openmeteoclient

import (
	"context"
	"fmt"
	"time"
)

// HistoricalDaily fetches observed daily aggregates from the reanalysis
// archive. The archive uses the older parameter spelling for wind and cloud
// cover; both bounds are inclusive calendar dates.
func (c *OpenMeteoClient) HistoricalDaily(ctx context.Context, startDate, endDate time.Time) (*DailyResponse, error) {
	query := map[string]string{
		"latitude":   formatCoordinate(c.config.Weather.Latitude),
		"longitude":  formatCoordinate(c.config.Weather.Longitude),
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
		"daily": "temperature_2m_max,temperature_2m_min,precipitation_sum," +
			"precipitation_hours,weathercode,sunshine_duration,windspeed_10m_max," +
			"pressure_msl_mean,cloudcover_mean,relative_humidity_2m_mean",
		"timezone": c.config.Weather.Timezone,
	}

	resp, err := c.get(ctx, c.config.Weather.ArchiveURL, query)
	if err != nil {
		return nil, fmt.Errorf("archive request: %w", err)
	}

	return resp, nil
}
