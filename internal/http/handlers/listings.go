package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelapp/internal/domain/models"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

type listingCreateRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"price_per_night" binding:"required"`
	MaxGuests     int     `json:"max_guests" binding:"required"`
}

type listingUpdateRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	PricePerNight *float64 `json:"price_per_night"`
	MaxGuests     *int     `json:"max_guests"`
}

// GET /api/listings?max_price=150.00
func GetListings(c *gin.Context) {
	var filter models.ListingFilter
	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "max_price must be a number", nil)
			return
		}
		filter.MaxPrice = &v
	}

	svc := services.ListingService{}
	out, err := svc.List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/listings/:id
func GetListingByID(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	svc := services.ListingService{}
	l, err := svc.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// POST /api/listings
func CreateListing(c *gin.Context) {
	var req listingCreateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.ListingService{}
	l, err := svc.Create(models.Listing{
		Title:         req.Title,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// PUT/PATCH /api/listings/:id
func UpdateListing(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req listingUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.ListingService{}
	l, err := svc.Update(id, models.ListingUpdate{
		Title:         req.Title,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// DELETE /api/listings/:id
func DeleteListing(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	svc := services.ListingService{}
	if err := svc.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/listings/:id/reviews
func GetListingReviews(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	svc := services.ReviewService{}
	out, err := svc.ListForListing(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
