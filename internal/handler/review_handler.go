package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexpass/gympass-backend-go/internal/middleware"
	"github.com/flexpass/gympass-backend-go/internal/models"
	"github.com/flexpass/gympass-backend-go/internal/service"
	"github.com/flexpass/gympass-backend-go/pkg/response"
)

// ReviewHandler handles HTTP requests for listing reviews
type ReviewHandler struct {
	service *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// GetReviews handles GET /api/v1/listings/:id/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.service.ListReviews(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get reviews", err)
		return
	}

	response.Success(c, gin.H{
		"data":  reviews,
		"total": len(reviews),
	})
}

// CreateReview handles POST /api/v1/listings/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input models.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid review payload", err)
		return
	}

	review, err := h.service.AddReview(middleware.UserID(c), c.Param("id"), input)
	if err == service.ErrListingNotFound {
		response.Error(c, http.StatusNotFound, "Listing not found", nil)
		return
	}
	if err == service.ErrInvalidRating {
		response.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5", nil)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create review", err)
		return
	}

	response.Success(c, review)
}
