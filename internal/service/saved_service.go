package service

import (
	"github.com/flexpass/gympass-backend-go/internal/models"
	"github.com/flexpass/gympass-backend-go/internal/repository"
)

// SavedService handles saved gyms (favorites)
type SavedService struct {
	saved    *repository.SavedRepository
	listings *repository.ListingRepository
}

// NewSavedService creates a new saved-listing service
func NewSavedService(saved *repository.SavedRepository, listings *repository.ListingRepository) *SavedService {
	return &SavedService{saved: saved, listings: listings}
}

// SavedIDs retrieves the user's saved listing IDs
func (s *SavedService) SavedIDs(userID string) ([]string, error) {
	return s.saved.GetSavedListingIDs(userID)
}

// SavedListings retrieves the user's saved listings in full
func (s *SavedService) SavedListings(userID string) ([]models.Listing, error) {
	return s.saved.GetSavedListings(userID)
}

// Save marks a listing as saved; saving twice is a no-op
func (s *SavedService) Save(userID, listingID string) error {
	listing, err := s.listings.GetListingByID(listingID)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}
	return s.saved.AddSavedListing(userID, listingID)
}

// Unsave removes a saved listing; removing an unsaved one is a no-op
func (s *SavedService) Unsave(userID, listingID string) error {
	return s.saved.RemoveSavedListing(userID, listingID)
}
