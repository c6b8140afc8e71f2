package domain

import "time"

// WalkinForecast is one predicted walk-in guest count, keyed by
// (TargetDate, ModelName). Re-running the prediction upserts the row.
type WalkinForecast struct {
	TargetDate   time.Time
	PredWalkins  float64
	ModelName    string
	RunAt        time.Time
}

// DashboardDay is one row of the joined dashboard view: prediction,
// reservations and the latest weather forecast for a single date.
type DashboardDay struct {
	Date               time.Time
	PredWalkins        float64
	ReservationsPeople int
	ReservationsCount  int
	TempMax            float64
	PrecipitationSum   float64
	SunshineHours      float64
	WeatherCode        int
}

// TotalGuests is expected demand: confirmed reservation guests plus the
// predicted walk-ins.
func (d *DashboardDay) TotalGuests() int {
	return d.ReservationsPeople + int(d.PredWalkins)
}
