package models

import "time"

// Booking statuses. Only pending and confirmed block a listing's dates.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is a known lifecycle status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking reserves a listing for a half-open date range [StartDate, EndDate).
// Dates are calendar dates in YYYY-MM-DD form.
type Booking struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listing_id"`
	UserID    int64     `json:"user_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingUpdate supports PATCH-style updates via key presence.
type BookingUpdate struct {
	StartDate *string
	EndDate   *string
	Status    *string
}

// BookingFilter narrows booking queries.
type BookingFilter struct {
	ListingID *int64
}
