// Package validation holds the pure business rules applied before any
// write reaches storage. Nothing here touches the database; the one
// stateful booking rule (date overlap) lives in the booking service on
// top of ValidateBookingDates.
package validation

import (
	"strings"
	"time"

	"travelapp/internal/domain"
)

// ValidateListing checks listing invariants: positive nightly price and
// room for at least one guest.
func ValidateListing(title string, pricePerNight float64, maxGuests int) error {
	if strings.TrimSpace(title) == "" {
		return domain.ValidationError{Field: "title", Msg: "Title must not be blank."}
	}
	if pricePerNight <= 0 {
		return domain.ValidationError{Field: "price_per_night", Msg: "Price must be greater than zero."}
	}
	if maxGuests <= 0 {
		return domain.ValidationError{Field: "max_guests", Msg: "Maximum guests must be greater than zero."}
	}
	return nil
}

// ValidateRating checks the 1..5 review rating bound.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return domain.ValidationError{Field: "rating", Msg: "Rating must be between 1 and 5."}
	}
	return nil
}

// ValidateBookingDates checks the stateless booking rules against the
// given calendar day. today is injected so callers and tests agree on
// what "the past" means.
func ValidateBookingDates(start, end, today time.Time) error {
	if !start.Before(end) {
		return domain.ValidationError{Msg: "End date must be after start date."}
	}
	if daysBetween(start, end) < 1 {
		return domain.ValidationError{Msg: "Booking must be for at least one night."}
	}
	if start.Before(today) {
		return domain.ValidationError{Msg: "Cannot book for past dates."}
	}
	return nil
}

// daysBetween counts calendar days, ignoring the wall-clock length of
// the days in between (a one-night stay over a DST change is still one
// night).
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
