package services

import (
	"database/sql"
	"errors"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/validation"
)

type ReviewService struct {
	Repo        repositories.ReviewRepository
	ListingRepo repositories.ListingRepository
}

// Create persists a review authored by the authenticated caller. The
// author identity always comes from userID, never from the payload.
func (s ReviewService) Create(userID int64, rev models.Review) (models.Review, error) {
	rev.UserID = userID

	if err := validation.ValidateRating(rev.Rating); err != nil {
		return models.Review{}, err
	}
	if _, err := s.ListingRepo.GetByID(rev.ListingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, domain.ValidationError{Field: "listing_id", Msg: "Listing does not exist."}
		}
		return models.Review{}, domain.InternalError{Err: err}
	}

	id, err := s.Repo.Create(rev)
	if err != nil {
		return models.Review{}, domain.InternalError{Err: err}
	}

	stored, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Review{}, domain.InternalError{Err: err}
	}
	return stored, nil
}

// ListForListing returns the reviews of one listing, newest first.
func (s ReviewService) ListForListing(listingID int64) ([]models.Review, error) {
	if _, err := s.ListingRepo.GetByID(listingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "listing", Err: err}
		}
		return nil, domain.InternalError{Err: err}
	}
	out, err := s.Repo.ListByListingID(listingID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
