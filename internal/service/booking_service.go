package service

import (
	"errors"
	"time"

	"github.com/flexpass/gympass-backend-go/internal/models"
	"github.com/flexpass/gympass-backend-go/internal/repository"
)

// Booking errors surfaced to handlers.
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidPassDate = errors.New("pass date must be YYYY-MM-DD")
)

// BookingService handles day-pass purchases
type BookingService struct {
	bookings *repository.BookingRepository
	listings *repository.ListingRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookings *repository.BookingRepository, listings *repository.ListingRepository) *BookingService {
	return &BookingService{bookings: bookings, listings: listings}
}

// CreateBooking records a confirmed day-pass purchase for the user
func (s *BookingService) CreateBooking(userID string, input models.CreateBookingInput) (*models.Booking, error) {
	listing, err := s.listings.GetListingByID(input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	if _, err := time.Parse("2006-01-02", input.PassDate); err != nil {
		return nil, ErrInvalidPassDate
	}

	passCount := input.PassCount
	if passCount < 1 {
		passCount = 1
	}

	booking := &models.Booking{
		UserID:    userID,
		ListingID: input.ListingID,
		PassDate:  input.PassDate,
		PassCount: passCount,
		Status:    models.BookingStatusConfirmed,
	}
	if err := s.bookings.InsertBooking(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListBookings retrieves the user's bookings with their listings
func (s *BookingService) ListBookings(userID string) ([]models.BookingWithListing, error) {
	return s.bookings.GetBookingsByUser(userID)
}
