package repositories

import (
	"testing"

	"travelapp/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCountOverlappingArgs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := BookingRepository{DB: db}

	// create path: no exclusion
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1), "2025-09-04", "2025-09-02").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))

	n, err := repo.CountOverlapping(db, 1, "2025-09-02", "2025-09-04", 0)
	if err != nil {
		t.Fatalf("CountOverlapping returned error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 overlaps, got %d", n)
	}

	// update path: own row excluded
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1), "2025-09-04", "2025-09-02", int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	n, err = repo.CountOverlapping(db, 1, "2025-09-02", "2025-09-04", 9)
	if err != nil {
		t.Fatalf("CountOverlapping returned error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 overlaps, got %d", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingUpdateTxSkipsEmptyPatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := BookingRepository{DB: db}
	if err := repo.UpdateTx(db, 5, models.BookingUpdate{}); err != nil {
		t.Fatalf("empty patch should be a no-op, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
