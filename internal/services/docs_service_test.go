package services

import "testing"

func TestDocsServiceGenerateInvoice(t *testing.T) {
	loader := func(id int64) (bookingDocData, error) {
		return bookingDocData{
			BookingID:     id,
			ListingTitle:  "Beautiful Apartment #1",
			GuestName:     "Test User",
			GuestEmail:    "test@example.com",
			StartDate:     "2025-09-02",
			EndDate:       "2025-09-04",
			Status:        "confirmed",
			Nights:        2,
			PricePerNight: 100.00,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateInvoice(1)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateInvoice returned empty data")
	}
}
