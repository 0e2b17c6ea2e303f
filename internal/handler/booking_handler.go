package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexpass/gympass-backend-go/internal/middleware"
	"github.com/flexpass/gympass-backend-go/internal/models"
	"github.com/flexpass/gympass-backend-go/internal/service"
	"github.com/flexpass/gympass-backend-go/pkg/response"
)

// BookingHandler handles HTTP requests for day-pass bookings
type BookingHandler struct {
	service *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service *service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// CreateBooking handles POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking payload", err)
		return
	}

	booking, err := h.service.CreateBooking(middleware.UserID(c), input)
	if err == service.ErrListingNotFound {
		response.Error(c, http.StatusNotFound, "Listing not found", nil)
		return
	}
	if err == service.ErrInvalidPassDate {
		response.Error(c, http.StatusBadRequest, "Pass date must be YYYY-MM-DD", nil)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create booking", err)
		return
	}

	response.Success(c, booking)
}

// GetBookings handles GET /api/v1/bookings
func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get bookings", err)
		return
	}

	response.Success(c, gin.H{
		"data":  bookings,
		"total": len(bookings),
	})
}
