package services

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking invoice PDF.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	ListingRepo repositories.ListingRepository
	UserRepo    repositories.UserRepository
	RequestID   string
	Loader      func(int64) (bookingDocData, error)
}

type bookingDocData struct {
	BookingID     int64
	ListingTitle  string
	GuestName     string
	GuestEmail    string
	StartDate     string
	EndDate       string
	Status        string
	Nights        int
	PricePerNight float64
}

func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogAction(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(data)
}

func (s DocsService) loadBookingDocData(bookingID int64) (bookingDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	var out bookingDocData
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}

	out.BookingID = b.ID
	out.StartDate = b.StartDate
	out.EndDate = b.EndDate
	out.Status = b.Status

	if start, err := utils.ParseDate(b.StartDate); err == nil {
		if end, err := utils.ParseDate(b.EndDate); err == nil {
			out.Nights = int(end.Sub(start).Hours() / 24)
		}
	}

	if l, err := s.ListingRepo.GetByID(b.ListingID); err == nil {
		out.ListingTitle = l.Title
		out.PricePerNight = l.PricePerNight
	}
	if u, err := s.UserRepo.GetByID(b.UserID); err == nil {
		out.GuestName = u.Name
		if out.GuestName == "" {
			out.GuestName = u.Username
		}
		out.GuestEmail = u.Email
	}

	return out, nil
}

func buildInvoicePDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d-%s", d.BookingID, strings.ReplaceAll(d.StartDate, "-", ""))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(d.GuestName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email : %s", safe(d.GuestEmail, "-")))
	pdf.Ln(10)

	nights := d.Nights
	if nights < 1 {
		nights = 1
	}
	desc := fmt.Sprintf("%s, %s to %s (%d night(s), status %s)",
		safe(d.ListingTitle, "-"), safe(d.StartDate, "-"), safe(d.EndDate, "-"),
		nights, safe(d.Status, "-"),
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.Cell(0, 6, fmt.Sprintf("Price per night: %.2f", d.PricePerNight))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", d.PricePerNight*float64(nights)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This invoice covers the full stay for the booking above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
