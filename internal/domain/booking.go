package domain

import (
	"encoding/json"
	"time"
)

// Booking is one reservation (or walk-in) as persisted in the bookings table.
// The ID is the opaque identifier assigned by the booking platform; rows are
// never deleted, re-syncs upsert on it.
type Booking struct {
	ID          string
	BookingDate time.Time
	EndDate     *time.Time
	People      int
	Cancelled   bool
	NoShow      bool
	WalkIn      bool
	Source      *string
	Host        *string

	// Opaque sub-objects from the booking platform. Stored as raw JSON,
	// never interpreted by this service.
	Tracking      json.RawMessage
	TagIDs        []string
	TagsCount     json.RawMessage
	Payment       json.RawMessage
	Rating        *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Confirmed reports whether the booking counts towards expected demand.
func (b *Booking) Confirmed() bool {
	return !b.Cancelled && !b.NoShow
}

// BookingDayAggregate is the per-day rollup of confirmed, non-walk-in
// reservations consumed by the feature pipeline.
type BookingDayAggregate struct {
	Date               time.Time
	ReservationsCount  int
	ReservationsPeople int
	AvgReservationSize float64
}

// WalkinDayAggregate sums realized walk-in guests per historical day.
type WalkinDayAggregate struct {
	Date         time.Time
	WalkinPeople int
}
