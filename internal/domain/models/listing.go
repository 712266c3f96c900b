package models

import "time"

// Listing is a bookable accommodation record.
type Listing struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"price_per_night"`
	MaxGuests     int       `json:"max_guests"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListingUpdate supports PATCH-style updates via key presence.
type ListingUpdate struct {
	Title         *string
	Description   *string
	PricePerNight *float64
	MaxGuests     *int
}

// ListingFilter narrows listing queries.
type ListingFilter struct {
	MaxPrice *float64
}
