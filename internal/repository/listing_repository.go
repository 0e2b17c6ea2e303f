package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flexpass/gympass-backend-go/internal/models"
)

const listingColumns = `id, host_id, title, location, price, rating, review_count,
	image_urls, description, category, amenities, latitude, longitude,
	hours_of_operation, created_at, updated_at`

// ListingRepository handles database operations for gym listings
type ListingRepository struct {
	db *sql.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// GetListings retrieves all listings, newest first
func (r *ListingRepository) GetListings() ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY created_at DESC, id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}

	return listings, rows.Err()
}

// GetListingByID retrieves a single listing, or nil when absent
func (r *ListingRepository) GetListingByID(id string) (*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = ?`

	l, err := scanListing(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// GetListingsByIDs retrieves the listings for the given IDs, preserving the
// newest-first ordering. Unknown IDs are silently skipped.
func (r *ListingRepository) GetListingsByIDs(ids []string) ([]models.Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := ""
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		if i > 0 {
			placeholders += ","
		}
		placeholders += "?"
		args[i] = id
	}

	query := `SELECT ` + listingColumns + ` FROM listings WHERE id IN (` + placeholders + `) ORDER BY created_at DESC, id`
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings by ids: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}

	return listings, rows.Err()
}

// InsertListing inserts a new listing, assigning an ID and timestamps when
// missing
func (r *ListingRepository) InsertListing(l *models.Listing) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if l.CreatedAt == "" {
		l.CreatedAt = now
	}
	l.UpdatedAt = now

	imageURLs, err := json.Marshal(l.ImageURLs)
	if err != nil {
		return fmt.Errorf("failed to encode image urls: %w", err)
	}
	amenities, err := json.Marshal(l.Amenities)
	if err != nil {
		return fmt.Errorf("failed to encode amenities: %w", err)
	}

	query := `INSERT INTO listings (id, host_id, title, location, price, rating, review_count,
		image_urls, description, category, amenities, latitude, longitude,
		hours_of_operation, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.Exec(query,
		l.ID, l.HostID, l.Title, l.Location, l.Price, l.Rating, l.ReviewCount,
		string(imageURLs), l.Description, l.Category, string(amenities),
		l.Latitude, l.Longitude, nullableString(l.HoursOfOperation), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*models.Listing, error) {
	var l models.Listing
	var hostID sql.NullString
	var imageURLs, amenities string
	var description, hoursOfOperation sql.NullString
	var latitude, longitude sql.NullFloat64

	err := row.Scan(
		&l.ID, &hostID, &l.Title, &l.Location, &l.Price, &l.Rating, &l.ReviewCount,
		&imageURLs, &description, &l.Category, &amenities, &latitude, &longitude,
		&hoursOfOperation, &l.CreatedAt, &l.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan listing: %w", err)
	}

	if hostID.Valid {
		l.HostID = &hostID.String
	}
	l.Description = description.String
	l.HoursOfOperation = hoursOfOperation.String
	if latitude.Valid {
		l.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		l.Longitude = &longitude.Float64
	}

	// JSON columns degrade to empty slices rather than failing the read
	if err := json.Unmarshal([]byte(imageURLs), &l.ImageURLs); err != nil {
		l.ImageURLs = nil
	}
	if err := json.Unmarshal([]byte(amenities), &l.Amenities); err != nil {
		l.Amenities = nil
	}

	l.Category = models.NormalizeCategory(l.Category)

	return &l, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
