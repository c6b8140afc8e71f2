package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasterSunday(t *testing.T) {
	testCases := []struct {
		year     int
		expected time.Time
	}{
		{2018, date(2018, time.April, 1)},
		{2023, date(2023, time.April, 9)},
		{2024, date(2024, time.March, 31)},
		{2025, date(2025, time.April, 20)},
		{2026, date(2026, time.April, 5)},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, easterSunday(tc.year), "easter %d", tc.year)
	}
}

func TestHolidayCalendar(t *testing.T) {
	testCases := []struct {
		name     string
		region   Region
		date     time.Time
		expected bool
	}{
		{
			name:     "good friday is a german holiday",
			region:   RegionDE,
			date:     date(2024, time.March, 29),
			expected: true,
		},
		{
			name:     "easter sunday itself is not a german public holiday",
			region:   RegionDE,
			date:     date(2024, time.March, 31),
			expected: false,
		},
		{
			name:     "ascension day 2024",
			region:   RegionDE,
			date:     date(2024, time.May, 9),
			expected: true,
		},
		{
			name:     "reformation day counts in schleswig-holstein",
			region:   RegionSH,
			date:     date(2024, time.October, 31),
			expected: true,
		},
		{
			name:     "reformation day counts in hamburg",
			region:   RegionHH,
			date:     date(2024, time.October, 31),
			expected: true,
		},
		{
			name:     "reformation day is not federal",
			region:   RegionDE,
			date:     date(2024, time.October, 31),
			expected: false,
		},
		{
			name:     "reformation day was no holiday in the north before 2018",
			region:   RegionSH,
			date:     date(2017, time.October, 31),
			expected: false,
		},
		{
			name:     "store bededag 2023",
			region:   RegionDK,
			date:     date(2023, time.May, 5),
			expected: true,
		},
		{
			name:     "store bededag abolished from 2024",
			region:   RegionDK,
			date:     date(2024, time.April, 26),
			expected: false,
		},
		{
			name:     "danish easter sunday is a holiday",
			region:   RegionDK,
			date:     date(2024, time.March, 31),
			expected: true,
		},
		{
			name:     "maundy thursday only in denmark",
			region:   RegionDE,
			date:     date(2024, time.March, 28),
			expected: false,
		},
		{
			name:     "plain weekday",
			region:   RegionDE,
			date:     date(2024, time.June, 12),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calendar := NewHolidayCalendar(tc.region)
			assert.Equal(t, tc.expected, calendar.IsHoliday(tc.date))
		})
	}
}

func TestHolidayCalendarIgnoresTimeOfDay(t *testing.T) {
	calendar := NewHolidayCalendar(RegionDE)

	berlin, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)

	newYearEvening := time.Date(2024, time.January, 1, 19, 30, 0, 0, berlin)
	assert.True(t, calendar.IsHoliday(newYearEvening))
}
