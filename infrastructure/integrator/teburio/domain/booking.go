package teburiodomain

import (
	"encoding/json"
	"time"

	"github.com/nbohlen/walkin-forecast-api/internal/domain"
)

// AnalyticsBooking is one booking as returned by the bookingsAnalytics
// GraphQL query. Dates arrive as Unix milliseconds; the boolean status flags
// may be null and default to false. Tracking, bookingTagsCount and payment
// are stored opaque, this service never interprets them.
type AnalyticsBooking struct {
	ID               string          `json:"_id"`
	Date             int64           `json:"date"`
	EndDate          *int64          `json:"endDate"`
	People           int             `json:"people"`
	Cancelled        *bool           `json:"cancelled"`
	NoShow           *bool           `json:"noShow"`
	WalkIn           *bool           `json:"walkIn"`
	Source           *string         `json:"source"`
	Host             *string         `json:"host"`
	Tracking         json.RawMessage `json:"tracking"`
	Rating           *int            `json:"rating"`
	TagIDs           []string        `json:"tagIds"`
	BookingTagsCount json.RawMessage `json:"bookingTagsCount"`
	Payment          json.RawMessage `json:"payment"`
}

// ToBooking converts the API payload into the persisted booking. Timestamps
// are interpreted in the given location so a booking lands on the restaurant's
// calendar day, not UTC's.
func (b *AnalyticsBooking) ToBooking(loc *time.Location) *domain.Booking {
	booking := &domain.Booking{
		ID:          b.ID,
		BookingDate: time.UnixMilli(b.Date).In(loc),
		People:      b.People,
		Cancelled:   boolValue(b.Cancelled),
		NoShow:      boolValue(b.NoShow),
		WalkIn:      boolValue(b.WalkIn),
		Source:      b.Source,
		Host:        b.Host,
		Tracking:    nullableRaw(b.Tracking),
		TagIDs:      b.TagIDs,
		TagsCount:   nullableRaw(b.BookingTagsCount),
		Payment:     nullableRaw(b.Payment),
		Rating:      b.Rating,
	}

	if b.EndDate != nil {
		endDate := time.UnixMilli(*b.EndDate).In(loc)
		booking.EndDate = &endDate
	}

	if booking.TagIDs == nil {
		booking.TagIDs = []string{}
	}

	return booking
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

// nullableRaw drops JSON null so it persists as SQL NULL.
func nullableRaw(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}
