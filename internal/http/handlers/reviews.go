package handlers

import (
	"net/http"

	"travelapp/internal/domain/models"
	"travelapp/internal/http/middleware"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

// reviewCreateRequest deliberately has no user field: the author is
// always the authenticated caller, even if the payload carries one.
type reviewCreateRequest struct {
	ListingID int64  `json:"listing_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// POST /api/reviews
func CreateReview(c *gin.Context) {
	var req reviewCreateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.ReviewService{}
	rev, err := svc.Create(middleware.CallerID(c), models.Review{
		ListingID: req.ListingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}
