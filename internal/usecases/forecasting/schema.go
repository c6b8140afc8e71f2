package forecasting

import "time"

// Feature column names as the model artifact references them. The names are
// fixed by the training side; renaming one silently zeroes it at prediction
// time.
const (
	ColReservationsCount  = "reservations_count"
	ColReservationsPeople = "reservations_people"
	ColAvgReservationSize = "avg_reservation_size"
	ColReservations7dAvg  = "reservations_7d_avg"
	ColWalkin7dAvg        = "walkin_7d_avg"

	ColTempMax            = "temp_max"
	ColTempMin            = "temp_min"
	ColPrecipitationSum   = "precipitation_sum"
	ColPrecipitationHours = "precipitation_hours"
	ColHumidity           = "humidity"
	ColSunshineDuration   = "sunshine_duration"
	ColWindspeedMax       = "windspeed_max"
	ColCloudcoverMean     = "cloudcover_mean"
	ColWeatherCode        = "weathercode"
	ColWeatherScore       = "weather_score"
	ColIsCozyWeather      = "is_cozy_weather"
	ColIsTouristWeather   = "is_tourist_weather"

	ColWeekday   = "weekday"
	ColMonth     = "month"
	ColIsWeekend = "is_weekend"
	ColMonthSin  = "month_sin"
	ColMonthCos  = "month_cos"

	ColIsHolidayDE      = "is_holiday_de"
	ColIsHolidaySH      = "is_holiday_sh"
	ColIsHolidayHH      = "is_holiday_hh"
	ColIsHolidayDK      = "is_holiday_dk"
	ColIsFerienSH       = "is_ferien_sh"
	ColIsFerienHH       = "is_ferien_hh"
	ColBridgeDay        = "bridge_day"
	ColDayBeforeHoliday = "day_before_holiday"
	ColDayAfterHoliday  = "day_after_holiday"

	ColTempXWeekend         = "temp_x_weekend"
	ColReservationsXWeekend = "reservations_x_weekend"
	ColReservationsXTemp    = "reservations_x_temp"
	ColRainXClouds          = "rain_x_clouds"
)

// squareSuffix marks the squared variant of a base column, e.g. temp_max_sq.
const squareSuffix = "_sq"

// squaredColumns lists the base columns the pipeline also emits squared.
var squaredColumns = []string{
	ColTempMax,
	ColTempMin,
	ColPrecipitationSum,
	ColPrecipitationHours,
	ColHumidity,
	ColSunshineDuration,
	ColWindspeedMax,
	ColCloudcoverMean,
}

// weekdayDummyColumns returns wd_1..wd_6; Monday (wd_0) is the reference
// level and gets no dummy.
func weekdayDummyColumns() []string {
	return []string{"wd_1", "wd_2", "wd_3", "wd_4", "wd_5", "wd_6"}
}

// FeatureRow is one engineered day, ready for the model.
type FeatureRow struct {
	Date   time.Time
	Values map[string]float64
}

// Get returns the value for a column, or 0 when the pipeline never produced
// it. Missing columns are how older model artifacts stay usable.
func (r *FeatureRow) Get(col string) (float64, bool) {
	value, ok := r.Values[col]
	return value, ok
}
