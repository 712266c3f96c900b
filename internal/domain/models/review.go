package models

import "time"

// Review is a rating and comment authored against a listing. UserID is
// always the authenticated caller, never client-supplied input.
type Review struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listing_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
