package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flexpass/gympass-backend-go/internal/middleware"
	"github.com/flexpass/gympass-backend-go/internal/models"
	"github.com/flexpass/gympass-backend-go/internal/service"
	"github.com/flexpass/gympass-backend-go/pkg/response"
)

// ListingHandler handles HTTP requests for gym listings
type ListingHandler struct {
	service *service.ListingService
}

// NewListingHandler creates a new listing handler
func NewListingHandler(service *service.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// GetListings handles GET /api/v1/listings
func (h *ListingHandler) GetListings(c *gin.Context) {
	var filter models.ListingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	listings, err := h.service.Discover(filter, time.Now())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get listings", err)
		return
	}

	response.Success(c, gin.H{
		"data":  listings,
		"total": len(listings),
	})
}

// GetListingByID handles GET /api/v1/listings/:id
func (h *ListingHandler) GetListingByID(c *gin.Context) {
	detail, err := h.service.GetListingDetail(c.Param("id"), time.Now())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get listing", err)
		return
	}
	if detail == nil {
		response.Error(c, http.StatusNotFound, "Listing not found", nil)
		return
	}

	response.Success(c, detail)
}

// CreateListing handles POST /api/v1/listings
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var input models.CreateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid listing payload", err)
		return
	}

	listing, err := h.service.CreateListing(middleware.UserID(c), input)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create listing", err)
		return
	}

	response.Success(c, listing)
}
