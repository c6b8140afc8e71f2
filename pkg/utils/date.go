package utils

import "time"

// ParseDate parses a YYYY-MM-DD string; an empty string yields the zero time.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Midnight truncates a timestamp to the start of its day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekdayIndex returns the weekday with Monday = 0 .. Sunday = 6, the
// convention the model features and holiday logic use.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
