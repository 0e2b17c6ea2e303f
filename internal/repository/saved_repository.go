package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/flexpass/gympass-backend-go/internal/models"
)

// SavedRepository handles database operations for saved gyms (favorites)
type SavedRepository struct {
	db       *sql.DB
	listings *ListingRepository
}

// NewSavedRepository creates a new saved-listing repository
func NewSavedRepository(db *sql.DB) *SavedRepository {
	return &SavedRepository{db: db, listings: NewListingRepository(db)}
}

// GetSavedListingIDs retrieves the IDs of a user's saved listings
func (r *SavedRepository) GetSavedListingIDs(userID string) ([]string, error) {
	query := `SELECT listing_id FROM saved_listings WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved listings: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan saved listing id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetSavedListings retrieves a user's saved listings in full
func (r *SavedRepository) GetSavedListings(userID string) ([]models.Listing, error) {
	ids, err := r.GetSavedListingIDs(userID)
	if err != nil {
		return nil, err
	}
	return r.listings.GetListingsByIDs(ids)
}

// AddSavedListing marks a listing as saved; adding twice is a no-op
func (r *SavedRepository) AddSavedListing(userID, listingID string) error {
	query := `INSERT OR IGNORE INTO saved_listings (user_id, listing_id, created_at) VALUES (?, ?, ?)`
	_, err := r.db.Exec(query, userID, listingID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save listing: %w", err)
	}
	return nil
}

// RemoveSavedListing unmarks a listing; removing an unsaved listing is a
// no-op
func (r *SavedRepository) RemoveSavedListing(userID, listingID string) error {
	query := `DELETE FROM saved_listings WHERE user_id = ? AND listing_id = ?`
	_, err := r.db.Exec(query, userID, listingID)
	if err != nil {
		return fmt.Errorf("failed to remove saved listing: %w", err)
	}
	return nil
}

// IsSaved reports whether the user has saved the listing
func (r *SavedRepository) IsSaved(userID, listingID string) (bool, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM saved_listings WHERE user_id = ? AND listing_id = ?`, userID, listingID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check saved listing: %w", err)
	}
	return n > 0, nil
}
