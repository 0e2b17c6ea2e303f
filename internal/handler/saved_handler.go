package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexpass/gympass-backend-go/internal/middleware"
	"github.com/flexpass/gympass-backend-go/internal/service"
	"github.com/flexpass/gympass-backend-go/pkg/response"
)

// SavedHandler handles HTTP requests for saved gyms
type SavedHandler struct {
	service *service.SavedService
}

// NewSavedHandler creates a new saved-listing handler
func NewSavedHandler(service *service.SavedService) *SavedHandler {
	return &SavedHandler{service: service}
}

// GetSaved handles GET /api/v1/saved
func (h *SavedHandler) GetSaved(c *gin.Context) {
	ids, err := h.service.SavedIDs(middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get saved gyms", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	response.Success(c, gin.H{"listingIds": ids})
}

// GetSavedListings handles GET /api/v1/saved/listings
func (h *SavedHandler) GetSavedListings(c *gin.Context) {
	listings, err := h.service.SavedListings(middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get saved gyms", err)
		return
	}

	response.Success(c, gin.H{
		"data":  listings,
		"total": len(listings),
	})
}

// SaveListing handles PUT /api/v1/saved/:listingId
func (h *SavedHandler) SaveListing(c *gin.Context) {
	err := h.service.Save(middleware.UserID(c), c.Param("listingId"))
	if err == service.ErrListingNotFound {
		response.Error(c, http.StatusNotFound, "Listing not found", nil)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to save gym", err)
		return
	}

	response.Success(c, gin.H{"saved": true})
}

// UnsaveListing handles DELETE /api/v1/saved/:listingId
func (h *SavedHandler) UnsaveListing(c *gin.Context) {
	if err := h.service.Unsave(middleware.UserID(c), c.Param("listingId")); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to remove saved gym", err)
		return
	}

	response.Success(c, gin.H{"saved": false})
}
