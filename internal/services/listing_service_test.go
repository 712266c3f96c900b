package services

import (
	"testing"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListListingsMaxPriceFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM listings").WithArgs(150.00).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "price_per_night", "max_guests", "created_at", "updated_at"}).
			AddRow(1, "Test Listing 1", "First test listing", 100.00, 2, now, now))

	svc := ListingService{Repo: repositories.ListingRepository{DB: db}}
	maxPrice := 150.00
	out, err := svc.List(models.ListingFilter{MaxPrice: &maxPrice})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(out))
	}
	if out[0].PricePerNight != 100.00 {
		t.Fatalf("unexpected listing price %v", out[0].PricePerNight)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateListingRejectsInvalid(t *testing.T) {
	svc := ListingService{}

	if _, err := svc.Create(models.Listing{Title: "Bad", PricePerNight: -100.00, MaxGuests: 4}); err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected price rejection, got %v", err)
	}
	if _, err := svc.Create(models.Listing{Title: "Bad", PricePerNight: 100.00, MaxGuests: 0}); err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected max_guests rejection, got %v", err)
	}
}

func TestUpdateListingMergesAndValidates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := func(price float64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "title", "description", "price_per_night", "max_guests", "created_at", "updated_at"}).
			AddRow(1, "Test Listing", "", price, 4, now, now)
	}

	mock.ExpectQuery("FROM listings").WithArgs(int64(1)).WillReturnRows(rows(100.00))
	mock.ExpectExec("UPDATE listings").WithArgs(180.00, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM listings").WithArgs(int64(1)).WillReturnRows(rows(180.00))

	svc := ListingService{Repo: repositories.ListingRepository{DB: db}}
	price := 180.00
	l, err := svc.Update(1, models.ListingUpdate{PricePerNight: &price})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if l.PricePerNight != 180.00 {
		t.Fatalf("price not updated, got %v", l.PricePerNight)
	}

	// A merge that breaks an invariant must not reach the write.
	mock.ExpectQuery("FROM listings").WithArgs(int64(1)).WillReturnRows(rows(180.00))
	bad := -5.00
	if _, err := svc.Update(1, models.ListingUpdate{PricePerNight: &bad}); err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected merged validation to reject negative price, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
