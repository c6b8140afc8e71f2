package forecasting

import (
	"math"
	"time"

	"github.com/nbohlen/walkin-forecast-api/internal/domain"
	"github.com/nbohlen/walkin-forecast-api/pkg/utils"
)

// Weather fallbacks when a date has no forecast row at all. Temperatures
// forward-fill from the previous day first; the constants only apply at the
// very start of the window.
const (
	fallbackTempMax     = 15.0
	fallbackTempMin     = 10.0
	fallbackWindSpeed   = 10.0
	fallbackCloudCover  = 50.0
	constantHumidity    = 75.0
	rollingWindowDays   = 7
	maxPrecipitationHrs = 24.0
)

// FeatureInput is everything the pipeline needs for one prediction run.
// Dates in the aggregate slices must be midnight-normalized.
type FeatureInput struct {
	Today           time.Time
	HistorySeedDays int
	DaysAhead       int
	Bookings        []domain.BookingDayAggregate
	Walkins         []domain.WalkinDayAggregate
	Weather         []domain.WeatherDay
}

// FeatureBuilder turns raw per-day aggregates into the engineered feature
// rows the model consumes.
type FeatureBuilder struct {
	calendarDE *HolidayCalendar
	calendarSH *HolidayCalendar
	calendarHH *HolidayCalendar
	calendarDK *HolidayCalendar
}

func NewFeatureBuilder() *FeatureBuilder {
	return &FeatureBuilder{
		calendarDE: NewHolidayCalendar(RegionDE),
		calendarSH: NewHolidayCalendar(RegionSH),
		calendarHH: NewHolidayCalendar(RegionHH),
		calendarDK: NewHolidayCalendar(RegionDK),
	}
}

// Build assembles the feature matrix. The date spine covers the seed history
// before today plus the forecast horizon; the history only feeds the rolling
// averages and is cut from the result, which holds today onwards.
func (b *FeatureBuilder) Build(input FeatureInput) []*FeatureRow {
	// Dates act as map keys, so everything is pinned to UTC midnight
	// regardless of the timezone the inputs carry.
	today := dayKey(input.Today)
	start := today.AddDate(0, 0, -input.HistorySeedDays)
	end := today.AddDate(0, 0, input.DaysAhead)

	bookingsByDay := make(map[time.Time]domain.BookingDayAggregate, len(input.Bookings))
	for _, agg := range input.Bookings {
		bookingsByDay[dayKey(agg.Date)] = agg
	}
	walkinsByDay := make(map[time.Time]domain.WalkinDayAggregate, len(input.Walkins))
	for _, agg := range input.Walkins {
		walkinsByDay[dayKey(agg.Date)] = agg
	}
	weatherByDay := make(map[time.Time]domain.WeatherDay, len(input.Weather))
	for _, day := range input.Weather {
		weatherByDay[dayKey(day.Date)] = day
	}

	var rows []*FeatureRow
	lastTempMax := fallbackTempMax
	lastTempMin := fallbackTempMin
	haveTemps := false

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		values := make(map[string]float64, 64)

		if agg, ok := bookingsByDay[day]; ok {
			values[ColReservationsCount] = float64(agg.ReservationsCount)
			values[ColReservationsPeople] = float64(agg.ReservationsPeople)
			values[ColAvgReservationSize] = agg.AvgReservationSize
		} else {
			values[ColReservationsCount] = 0
			values[ColReservationsPeople] = 0
			values[ColAvgReservationSize] = 0
		}

		if agg, ok := walkinsByDay[day]; ok {
			values["walkin_people"] = float64(agg.WalkinPeople)
		} else {
			values["walkin_people"] = 0
		}

		if weather, ok := weatherByDay[day]; ok {
			values[ColTempMax] = weather.TempMax
			values[ColTempMin] = weather.TempMin
			values[ColPrecipitationSum] = weather.PrecipitationSum
			values[ColSunshineDuration] = weather.SunshineHours
			values[ColWindspeedMax] = weather.WindSpeedMax
			values[ColCloudcoverMean] = weather.CloudCoverMean
			values[ColWeatherCode] = float64(weather.WeatherCode)
			lastTempMax = weather.TempMax
			lastTempMin = weather.TempMin
			haveTemps = true
		} else {
			if haveTemps {
				values[ColTempMax] = lastTempMax
				values[ColTempMin] = lastTempMin
			} else {
				values[ColTempMax] = fallbackTempMax
				values[ColTempMin] = fallbackTempMin
			}
			values[ColPrecipitationSum] = 0
			values[ColSunshineDuration] = 0
			values[ColWindspeedMax] = fallbackWindSpeed
			values[ColCloudcoverMean] = fallbackCloudCover
			values[ColWeatherCode] = 0
		}

		values[ColHumidity] = constantHumidity

		rain := values[ColPrecipitationSum]
		if rain > 0 {
			values[ColPrecipitationHours] = math.Min(maxPrecipitationHrs, rain*2)
		} else {
			values[ColPrecipitationHours] = 0
		}

		rows = append(rows, &FeatureRow{Date: day, Values: values})
	}

	b.addRollingAverages(rows, today)

	for i, row := range rows {
		b.addTimeFeatures(row)
		b.addHolidayFeatures(rows, i)
		b.addWeatherFeatures(row)
		b.addSquaresAndInteractions(row)
	}

	// History rows have served the rolling averages; predictions start today.
	future := make([]*FeatureRow, 0, input.DaysAhead+1)
	for _, row := range rows {
		if !row.Date.Before(today) {
			future = append(future, row)
		}
	}

	return future
}

// addRollingAverages computes the trailing 7-day means. The walk-in average
// for today onwards holds the last value computed from realized history,
// since future walk-ins are exactly what the model predicts.
func (b *FeatureBuilder) addRollingAverages(rows []*FeatureRow, today time.Time) {
	for i, row := range rows {
		row.Values[ColReservations7dAvg] = rollingMean(rows, i, ColReservationsPeople)
	}

	lastKnown := 0.0
	haveKnown := false
	for i, row := range rows {
		if row.Date.Before(today) {
			lastKnown = rollingMean(rows, i, "walkin_people")
			haveKnown = true
			row.Values[ColWalkin7dAvg] = lastKnown
			continue
		}
		if haveKnown {
			row.Values[ColWalkin7dAvg] = lastKnown
		} else {
			row.Values[ColWalkin7dAvg] = 0
		}
	}
}

func rollingMean(rows []*FeatureRow, i int, col string) float64 {
	start := i - rollingWindowDays + 1
	if start < 0 {
		start = 0
	}

	sum := 0.0
	for j := start; j <= i; j++ {
		sum += rows[j].Values[col]
	}
	return sum / float64(i-start+1)
}

func (b *FeatureBuilder) addTimeFeatures(row *FeatureRow) {
	weekday := utils.WeekdayIndex(row.Date)
	month := int(row.Date.Month())

	row.Values[ColWeekday] = float64(weekday)
	row.Values[ColMonth] = float64(month)

	if weekday >= 5 {
		row.Values[ColIsWeekend] = 1
	} else {
		row.Values[ColIsWeekend] = 0
	}

	angle := float64(month-1) * (2 * math.Pi / 12)
	row.Values[ColMonthSin] = math.Sin(angle)
	row.Values[ColMonthCos] = math.Cos(angle)

	for i, col := range weekdayDummyColumns() {
		if weekday == i+1 {
			row.Values[col] = 1
		} else {
			row.Values[col] = 0
		}
	}
}

func (b *FeatureBuilder) addHolidayFeatures(rows []*FeatureRow, i int) {
	row := rows[i]

	row.Values[ColIsHolidayDE] = boolToFloat(b.calendarDE.IsHoliday(row.Date))
	row.Values[ColIsHolidaySH] = boolToFloat(b.calendarSH.IsHoliday(row.Date))
	row.Values[ColIsHolidayHH] = boolToFloat(b.calendarHH.IsHoliday(row.Date))
	row.Values[ColIsHolidayDK] = boolToFloat(b.calendarDK.IsHoliday(row.Date))

	// TODO: wire a school-holiday source for SH and HH; the model was
	// trained with these flags zeroed as well.
	row.Values[ColIsFerienSH] = 0
	row.Values[ColIsFerienHH] = 0

	nextDayHoliday := boolToFloat(b.calendarSH.IsHoliday(row.Date.AddDate(0, 0, 1)))
	prevDayHoliday := boolToFloat(b.calendarSH.IsHoliday(row.Date.AddDate(0, 0, -1)))

	weekday := utils.WeekdayIndex(row.Date)
	bridge := 0.0
	if weekday == 4 && prevDayHoliday == 1 {
		bridge = 1
	}
	if weekday == 0 && nextDayHoliday == 1 {
		bridge = 1
	}

	row.Values[ColBridgeDay] = bridge
	row.Values[ColDayBeforeHoliday] = nextDayHoliday
	row.Values[ColDayAfterHoliday] = prevDayHoliday
}

func (b *FeatureBuilder) addWeatherFeatures(row *FeatureRow) {
	row.Values[ColWeatherScore] = weatherScore(
		row.Values[ColTempMax],
		row.Values[ColPrecipitationSum],
		row.Values[ColCloudcoverMean],
	)

	cozy := row.Values[ColTempMax] < 10 && row.Values[ColPrecipitationSum] > 2
	row.Values[ColIsCozyWeather] = boolToFloat(cozy)

	tourist := row.Values[ColTempMax] > 20 && row.Values[ColSunshineDuration] > 5
	row.Values[ColIsTouristWeather] = boolToFloat(tourist)
}

func (b *FeatureBuilder) addSquaresAndInteractions(row *FeatureRow) {
	for _, col := range squaredColumns {
		value := row.Values[col]
		row.Values[col+squareSuffix] = value * value
	}

	weekend := row.Values[ColIsWeekend]
	row.Values[ColTempXWeekend] = row.Values[ColTempMax] * weekend
	row.Values[ColReservationsXWeekend] = row.Values[ColReservationsPeople] * weekend
	row.Values[ColReservationsXTemp] = row.Values[ColReservationsPeople] * row.Values[ColTempMax]
	row.Values[ColRainXClouds] = row.Values[ColPrecipitationSum] * row.Values[ColCloudcoverMean]
}

// weatherScore grades a day for terrace business on a 1..5 scale. Neutral
// starts at 3; pleasant temperatures and clear skies push up, rain and
// extremes push down.
func weatherScore(tempMax, rain, clouds float64) float64 {
	score := 3.0

	if tempMax >= 20 && tempMax <= 26 {
		score++
	} else if tempMax < 10 || tempMax > 32 {
		score--
	}

	if rain > 5 {
		score--
	}
	if rain > 15 {
		score--
	}
	if rain == 0 {
		score += 0.5
	}

	if clouds < 30 {
		score += 0.5
	}
	if clouds > 80 {
		score -= 0.5
	}

	return math.Max(1, math.Min(5, math.Round(score)))
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
