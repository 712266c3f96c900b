package services

import (
	"testing"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateReviewRejectsRatingOutOfBounds(t *testing.T) {
	svc := ReviewService{}

	for _, rating := range []int{0, 6} {
		_, err := svc.Create(7, models.Review{ListingID: 1, Rating: rating})
		if err == nil || !domain.IsValidation(err) {
			t.Fatalf("rating %d: expected validation rejection, got %v", rating, err)
		}
	}
}

func TestCreateReviewUsesCallerIdentity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM listings").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "price_per_night", "max_guests", "created_at", "updated_at"}).
			AddRow(1, "Test Listing", "", 100.00, 4, now, now))
	// user_id must be the caller's, not whatever the payload carried
	mock.ExpectExec("INSERT INTO reviews").WithArgs(int64(1), int64(7), 5, "Great place!").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("FROM reviews").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "listing_id", "user_id", "rating", "comment", "created_at"}).
			AddRow(3, 1, 7, 5, "Great place!", now))

	svc := ReviewService{
		Repo:        repositories.ReviewRepository{DB: db},
		ListingRepo: repositories.ListingRepository{DB: db},
	}
	rev, err := svc.Create(7, models.Review{ListingID: 1, UserID: 999, Rating: 5, Comment: "Great place!"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rev.UserID != 7 {
		t.Fatalf("author identity not overwritten, got user_id=%d", rev.UserID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
