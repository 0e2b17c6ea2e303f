package models

// Review represents a user review of a listing.
type Review struct {
	ID         string `json:"id" db:"id"`
	ListingID  string `json:"listingId" db:"listing_id"`
	UserID     string `json:"userId" db:"user_id"`
	AuthorName string `json:"authorName" db:"author_name"`
	Rating     int    `json:"rating" db:"rating"` // 1-5
	Comment    string `json:"comment" db:"comment"`
	CreatedAt  string `json:"createdAt,omitempty" db:"created_at"`
}

// CreateReviewInput is the payload for posting a review.
type CreateReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
