package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelapp/internal/domain/models"
	"travelapp/internal/http/middleware"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

type bookingCreateRequest struct {
	ListingID int64  `json:"listing_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

type bookingUpdateRequest struct {
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

// GET /api/bookings?listing_id=1
func GetBookings(c *gin.Context) {
	var filter models.BookingFilter
	if raw := strings.TrimSpace(c.Query("listing_id")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			RespondError(c, http.StatusBadRequest, "listing_id must be a positive integer", nil)
			return
		}
		filter.ListingID = &v
	}

	svc := services.BookingService{}
	out, err := svc.List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	svc := services.BookingService{}
	b, err := svc.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req bookingCreateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{}
	b, err := svc.Create(middleware.CallerID(c), models.Booking{
		ListingID: req.ListingID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    req.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// PUT/PATCH /api/bookings/:id
func UpdateBooking(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req bookingUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{}
	b, err := svc.Update(id, models.BookingUpdate{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    req.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /api/bookings/:id
func DeleteBooking(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	svc := services.BookingService{}
	if err := svc.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/bookings/:id/invoice
func GetBookingInvoicePDF(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
