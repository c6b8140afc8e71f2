package domain

import "time"

// WeatherForecast is one daily forecast row keyed by (ForecastCreatedAt,
// ForecastDate). Each API poll writes a fresh creation date; readers take the
// most recent creation date per target date.
//
// SunshineHours is stored in hours; the Open-Meteo payload delivers seconds
// and the integrator converts at the ingestion boundary.
type WeatherForecast struct {
	ForecastCreatedAt time.Time
	ForecastDate      time.Time
	DaysAhead         int
	TempMax           float64
	TempMin           float64
	PrecipitationSum  float64
	PrecipitationProb float64
	SunshineHours     float64
	WindSpeedMax      float64
	CloudCoverMean    float64
	WeatherCode       int
	ApparentTempMax   float64
	ApparentTempMin   float64
}

// WeatherDaily is the observed (historical) daily aggregate, keyed uniquely
// by calendar date. Re-fetching the same date refines the row in place.
type WeatherDaily struct {
	Date               time.Time
	Location           string
	TempMax            *float64
	TempMin            *float64
	TempMean           *float64
	PrecipitationSum   float64
	PrecipitationHours float64
	Humidity           float64
	WindSpeedMax       float64
	PressureMSL        float64
	SunshineHours      float64
	CloudCoverMean     float64
	WeatherCode        int
	DataSource         string
}

// WeatherDay is the flattened per-date weather view used by the feature
// pipeline (latest forecast per target date).
type WeatherDay struct {
	Date             time.Time
	TempMax          float64
	TempMin          float64
	PrecipitationSum float64
	SunshineHours    float64
	WindSpeedMax     float64
	CloudCoverMean   float64
	WeatherCode      int
}
