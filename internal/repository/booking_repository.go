package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flexpass/gympass-backend-go/internal/models"
)

// BookingRepository handles database operations for day-pass bookings
type BookingRepository struct {
	db       *sql.DB
	listings *ListingRepository
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db, listings: NewListingRepository(db)}
}

// InsertBooking inserts a new booking, assigning an ID and timestamp when
// missing
func (r *BookingRepository) InsertBooking(b *models.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt == "" {
		b.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	query := `INSERT INTO bookings (id, user_id, listing_id, pass_date, pass_count, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, b.ID, b.UserID, b.ListingID, b.PassDate, b.PassCount, b.Status, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetBookingsByUser retrieves a user's bookings with their listings, newest
// pass date first
func (r *BookingRepository) GetBookingsByUser(userID string) ([]models.BookingWithListing, error) {
	query := `SELECT id, user_id, listing_id, pass_date, pass_count, status, created_at
		FROM bookings WHERE user_id = ? ORDER BY pass_date DESC, created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ListingID, &b.PassDate, &b.PassCount, &b.Status, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bookings))
	seen := make(map[string]bool)
	for _, b := range bookings {
		if !seen[b.ListingID] {
			seen[b.ListingID] = true
			ids = append(ids, b.ListingID)
		}
	}
	listings, err := r.listings.GetListingsByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}

	result := make([]models.BookingWithListing, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, models.BookingWithListing{
			Booking: b,
			Listing: byID[b.ListingID],
		})
	}
	return result, nil
}
