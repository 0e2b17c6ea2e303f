package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flexpass/gympass-backend-go/internal/database"
	"github.com/flexpass/gympass-backend-go/internal/models"
)

// ReviewRepository handles database operations for listing reviews
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// GetReviewsByListing retrieves a listing's reviews, newest first
func (r *ReviewRepository) GetReviewsByListing(listingID string) ([]models.Review, error) {
	query := `SELECT id, listing_id, user_id, author_name, rating, comment, created_at
		FROM reviews WHERE listing_id = ? ORDER BY created_at DESC`

	rows, err := r.db.Query(query, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.ListingID, &rv.UserID, &rv.AuthorName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// InsertReview inserts a review and recomputes the listing's aggregate
// rating and review count in the same transaction
func (r *ReviewRepository) InsertReview(rv *models.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if rv.CreatedAt == "" {
		rv.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		query := `INSERT INTO reviews (id, listing_id, user_id, author_name, rating, comment, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.Exec(query, rv.ID, rv.ListingID, rv.UserID, rv.AuthorName, rv.Rating, rv.Comment, rv.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert review: %w", err)
		}

		update := `UPDATE listings SET
			rating = (SELECT ROUND(AVG(rating), 2) FROM reviews WHERE listing_id = ?),
			review_count = (SELECT COUNT(*) FROM reviews WHERE listing_id = ?),
			updated_at = ?
			WHERE id = ?`
		now := time.Now().UTC().Format(time.RFC3339)
		if _, err := tx.Exec(update, rv.ListingID, rv.ListingID, now, rv.ListingID); err != nil {
			return fmt.Errorf("failed to update listing rating: %w", err)
		}
		return nil
	})
}
