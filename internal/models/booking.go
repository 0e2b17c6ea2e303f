package models

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a purchased day pass for a listing.
type Booking struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"userId" db:"user_id"`
	ListingID string `json:"listingId" db:"listing_id"`
	PassDate  string `json:"passDate" db:"pass_date"` // YYYY-MM-DD
	PassCount int    `json:"passCount" db:"pass_count"`
	Status    string `json:"status" db:"status"`
	CreatedAt string `json:"createdAt,omitempty" db:"created_at"`
}

// BookingWithListing is a booking joined with its listing for display.
type BookingWithListing struct {
	Booking
	Listing Listing `json:"listing"`
}

// CreateBookingInput is the payload for purchasing a day pass.
type CreateBookingInput struct {
	ListingID string `json:"listingId" binding:"required"`
	PassDate  string `json:"passDate" binding:"required"` // YYYY-MM-DD
	PassCount int    `json:"passCount"`
}
