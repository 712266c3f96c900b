package services

import (
	"testing"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func fixedToday() time.Time {
	d, _ := time.ParseInLocation("2006-01-02", "2025-09-01", time.Local)
	return d
}

func listingRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "title", "description", "price_per_night", "max_guests", "created_at", "updated_at"}).
		AddRow(1, "Test Listing", "A test listing", 100.00, 4, now, now)
}

func bookingRows(id int64, start, end, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "listing_id", "user_id", "start_date", "end_date", "status", "created_at"}).
		AddRow(id, 1, 1, start, end, status, time.Now())
}

func bookingInput(start, end, status string) models.Booking {
	return models.Booking{ListingID: 1, StartDate: start, EndDate: end, Status: status}
}

func bookingUpdate(start, end, status *string) models.BookingUpdate {
	return models.BookingUpdate{StartDate: start, EndDate: end, Status: status}
}

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := BookingService{
		Repo:        repositories.BookingRepository{DB: db},
		ListingRepo: repositories.ListingRepository{DB: db},
		DB:          db,
		Today:       fixedToday,
	}
	return svc, mock
}

func TestCreateBookingSuccess(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("FROM listings").WithArgs(int64(1)).WillReturnRows(listingRows())
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1), "2025-09-04", "2025-09-02").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(1), int64(7), "2025-09-02", "2025-09-04", "pending").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM bookings").WithArgs(int64(5)).
		WillReturnRows(bookingRows(5, "2025-09-02", "2025-09-04", "pending"))

	b, err := svc.Create(7, bookingInput("2025-09-02", "2025-09-04", ""))
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if b.ID != 5 || b.Status != "pending" {
		t.Fatalf("unexpected stored booking: %+v", b)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("FROM listings").WithArgs(int64(1)).WillReturnRows(listingRows())
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1), "2025-09-05", "2025-09-03").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.Create(7, bookingInput("2025-09-03", "2025-09-05", ""))
	if err == nil {
		t.Fatalf("expected overlap rejection")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingZeroLengthSpanRejected(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Create(7, bookingInput("2025-09-02", "2025-09-02", ""))
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation rejection, got %v", err)
	}
}

func TestCreateBookingPastStartRejected(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Create(7, bookingInput("2025-08-20", "2025-08-22", ""))
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation rejection, got %v", err)
	}
}

// Cancelling with the booking's own unchanged dates must not trip the
// overlap check against itself.
func TestUpdateBookingCancelExcludesSelf(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("FROM bookings").WithArgs(int64(5)).
		WillReturnRows(bookingRows(5, "2025-09-10", "2025-09-12", "pending"))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1), "2025-09-12", "2025-09-10", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("UPDATE bookings").WithArgs("cancelled", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM bookings").WithArgs(int64(5)).
		WillReturnRows(bookingRows(5, "2025-09-10", "2025-09-12", "cancelled"))

	status := "cancelled"
	b, err := svc.Update(5, bookingUpdate(nil, nil, &status))
	if err != nil {
		t.Fatalf("expected cancel to succeed, got %v", err)
	}
	if b.Status != "cancelled" {
		t.Fatalf("status not updated, got %q", b.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateBookingOverlapWithOtherRejected(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("FROM bookings").WithArgs(int64(5)).
		WillReturnRows(bookingRows(5, "2025-09-10", "2025-09-12", "pending"))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1), "2025-09-16", "2025-09-14", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	mock.ExpectRollback()

	start, end := "2025-09-14", "2025-09-16"
	_, err := svc.Update(5, bookingUpdate(&start, &end, nil))
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected overlap rejection, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
