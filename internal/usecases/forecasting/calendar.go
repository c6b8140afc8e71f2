package forecasting

import "time"

// Region selects a public-holiday calendar. Kiel sits between the
// Schleswig-Holstein, Hamburg and Danish catchment areas, so the model
// carries all four flags.
type Region int

const (
	RegionDE Region = iota
	RegionSH
	RegionHH
	RegionDK
)

// HolidayCalendar answers whether a date is a public holiday in one region.
// Years are materialized lazily and cached.
type HolidayCalendar struct {
	region Region
	years  map[int]map[time.Time]struct{}
}

func NewHolidayCalendar(region Region) *HolidayCalendar {
	return &HolidayCalendar{
		region: region,
		years:  make(map[int]map[time.Time]struct{}),
	}
}

func (c *HolidayCalendar) IsHoliday(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	year, ok := c.years[day.Year()]
	if !ok {
		year = c.buildYear(day.Year())
		c.years[day.Year()] = year
	}

	_, isHoliday := year[day]
	return isHoliday
}

func (c *HolidayCalendar) buildYear(year int) map[time.Time]struct{} {
	easter := easterSunday(year)

	var dates []time.Time
	switch c.region {
	case RegionDK:
		dates = danishHolidays(year, easter)
	default:
		dates = germanHolidays(year, easter)
		if c.region == RegionSH || c.region == RegionHH {
			// Reformationstag became a public holiday in the northern
			// states in 2018.
			if year >= 2018 {
				dates = append(dates, date(year, time.October, 31))
			}
		}
	}

	set := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

func germanHolidays(year int, easter time.Time) []time.Time {
	return []time.Time{
		date(year, time.January, 1),         // Neujahr
		easter.AddDate(0, 0, -2),            // Karfreitag
		easter.AddDate(0, 0, 1),             // Ostermontag
		date(year, time.May, 1),             // Tag der Arbeit
		easter.AddDate(0, 0, 39),            // Christi Himmelfahrt
		easter.AddDate(0, 0, 50),            // Pfingstmontag
		date(year, time.October, 3),         // Tag der Deutschen Einheit
		date(year, time.December, 25),       // 1. Weihnachtstag
		date(year, time.December, 26),       // 2. Weihnachtstag
	}
}

func danishHolidays(year int, easter time.Time) []time.Time {
	dates := []time.Time{
		date(year, time.January, 1),   // Nytaarsdag
		easter.AddDate(0, 0, -3),      // Skaertorsdag
		easter.AddDate(0, 0, -2),      // Langfredag
		easter,                        // Paaskedag
		easter.AddDate(0, 0, 1),       // Anden paaskedag
		easter.AddDate(0, 0, 39),      // Kristi himmelfartsdag
		easter.AddDate(0, 0, 49),      // Pinsedag
		easter.AddDate(0, 0, 50),      // Anden pinsedag
		date(year, time.December, 25), // Juledag
		date(year, time.December, 26), // Anden juledag
	}

	// Store Bededag was abolished as a public holiday after 2023.
	if year <= 2023 {
		dates = append(dates, easter.AddDate(0, 0, 26))
	}

	return dates
}

// easterSunday computes Easter Sunday with Gauss's algorithm (Gregorian
// calendar).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return date(year, time.Month(month), day)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
