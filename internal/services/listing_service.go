package services

import (
	"database/sql"
	"errors"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/validation"
)

type ListingService struct {
	Repo repositories.ListingRepository
}

func (s ListingService) List(filter models.ListingFilter) ([]models.Listing, error) {
	out, err := s.Repo.List(filter)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s ListingService) Get(id int64) (models.Listing, error) {
	l, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, domain.NotFoundError{Resource: "listing", Err: err}
		}
		return models.Listing{}, domain.InternalError{Err: err}
	}
	return l, nil
}

// Create validates the listing and persists it, returning the stored
// record with its assigned id and timestamps.
func (s ListingService) Create(l models.Listing) (models.Listing, error) {
	if err := validation.ValidateListing(l.Title, l.PricePerNight, l.MaxGuests); err != nil {
		return models.Listing{}, err
	}
	id, err := s.Repo.Create(l)
	if err != nil {
		return models.Listing{}, domain.InternalError{Err: err}
	}
	return s.Get(id)
}

// Update merges present fields into the stored listing and re-validates
// the whole record before writing.
func (s ListingService) Update(id int64, patch models.ListingUpdate) (models.Listing, error) {
	existing, err := s.Get(id)
	if err != nil {
		return models.Listing{}, err
	}

	merged := existing
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.PricePerNight != nil {
		merged.PricePerNight = *patch.PricePerNight
	}
	if patch.MaxGuests != nil {
		merged.MaxGuests = *patch.MaxGuests
	}

	if err := validation.ValidateListing(merged.Title, merged.PricePerNight, merged.MaxGuests); err != nil {
		return models.Listing{}, err
	}

	if err := s.Repo.Update(id, patch); err != nil {
		return models.Listing{}, domain.InternalError{Err: err}
	}
	return s.Get(id)
}

func (s ListingService) Delete(id int64) error {
	n, err := s.Repo.Delete(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "listing"}
	}
	return nil
}
