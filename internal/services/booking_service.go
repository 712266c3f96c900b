package services

import (
	"database/sql"
	"errors"
	"time"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"
	"travelapp/internal/validation"
)

type BookingService struct {
	Repo        repositories.BookingRepository
	ListingRepo repositories.ListingRepository
	DB          *sql.DB

	// Today overrides the reference date for past-date checks in tests.
	Today func() time.Time
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) today() time.Time {
	if s.Today != nil {
		return s.Today()
	}
	return utils.Today()
}

func (s BookingService) List(filter models.BookingFilter) ([]models.Booking, error) {
	out, err := s.Repo.List(filter)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s BookingService) Get(id int64) (models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// Create validates the booking, runs the overlap check and the insert in
// one transaction, and returns the stored record. userID is the
// authenticated caller; any user field in the payload is ignored.
func (s BookingService) Create(userID int64, b models.Booking) (models.Booking, error) {
	b.UserID = userID
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}

	if err := s.validateBooking(b); err != nil {
		return models.Booking{}, err
	}
	if _, err := s.ListingRepo.GetByID(b.ListingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.ValidationError{Field: "listing_id", Msg: "Listing does not exist."}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	n, err := s.Repo.CountOverlapping(tx, b.ListingID, b.StartDate, b.EndDate, 0)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if n > 0 {
		return models.Booking{}, domain.ValidationError{Msg: "This listing is already booked for the selected dates."}
	}

	id, err := s.Repo.CreateTx(tx, b)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	return s.Get(id)
}

// Update merges present fields into the stored booking and re-runs the
// full validation, excluding the booking's own row from the overlap
// check so an unchanged date range never rejects itself.
func (s BookingService) Update(id int64, patch models.BookingUpdate) (models.Booking, error) {
	existing, err := s.Get(id)
	if err != nil {
		return models.Booking{}, err
	}

	merged := existing
	if patch.StartDate != nil {
		merged.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		merged.EndDate = *patch.EndDate
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}

	if err := s.validateBooking(merged); err != nil {
		return models.Booking{}, err
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	n, err := s.Repo.CountOverlapping(tx, merged.ListingID, merged.StartDate, merged.EndDate, id)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if n > 0 {
		return models.Booking{}, domain.ValidationError{Msg: "This listing is already booked for the selected dates."}
	}

	if err := s.Repo.UpdateTx(tx, id, patch); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	return s.Get(id)
}

func (s BookingService) Delete(id int64) error {
	n, err := s.Repo.Delete(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// validateBooking runs the stateless rules: status value, date syntax,
// ordering, minimum span and past-date.
func (s BookingService) validateBooking(b models.Booking) error {
	if !models.ValidBookingStatus(b.Status) {
		return domain.ValidationError{Field: "status", Msg: "Status must be pending, confirmed or cancelled."}
	}
	start, err := utils.ParseDate(b.StartDate)
	if err != nil {
		return domain.ValidationError{Field: "start_date", Msg: "Date must use the YYYY-MM-DD format."}
	}
	end, err := utils.ParseDate(b.EndDate)
	if err != nil {
		return domain.ValidationError{Field: "end_date", Msg: "Date must use the YYYY-MM-DD format."}
	}
	return validation.ValidateBookingDates(start, end, s.today())
}
