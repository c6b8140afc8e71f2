package domain

import "time"

// BookingSnapshot captures booking demand for one target date as seen on the
// snapshot creation date. The (SnapshotDate, ForecastDate) pair is the upsert
// key; the BI layer reads the series to track booking velocity over time.
// The prediction step never reads snapshots.
type BookingSnapshot struct {
	SnapshotDate    time.Time
	ForecastDate    time.Time
	Reservations    int
	ConfirmedPeople int
	CancelledPeople int
	OnlinePeople    int
	InternalPeople  int
	WalkinPeople    int
	CreatedAt       time.Time
}
