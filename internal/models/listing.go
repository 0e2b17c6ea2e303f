package models

// Listing categories. CategoryAll is a filter-only sentinel and is never
// stored on a listing row.
const (
	CategoryAll      = "All"
	Category247      = "24/7"
	CategoryCrossFit = "CrossFit"
	CategoryYoga     = "Yoga"
	CategoryPool     = "Pool"
	CategoryBoutique = "Boutique"
	CategoryBudget   = "Budget"
)

// ListingCategories is the full enumeration in display order.
var ListingCategories = []string{
	CategoryAll,
	Category247,
	CategoryCrossFit,
	CategoryYoga,
	CategoryPool,
	CategoryBoutique,
	CategoryBudget,
}

// IsValidCategory reports whether s is a known category (including All).
func IsValidCategory(s string) bool {
	for _, c := range ListingCategories {
		if c == s {
			return true
		}
	}
	return false
}

// NormalizeCategory maps unknown or empty stored categories to Boutique so a
// listing is never excluded from results solely for a bad category value.
func NormalizeCategory(s string) string {
	if s == "" || s == CategoryAll || !IsValidCategory(s) {
		return CategoryBoutique
	}
	return s
}

// Listing represents a bookable gym with pricing, rating and schedule
// metadata. DistanceFromMe and IsOpen are computed per request and never
// persisted: distance defaults to 0 when either endpoint is unknown, and
// IsOpen is nil when the hours text is absent or unparseable.
type Listing struct {
	ID               string   `json:"id" db:"id"`
	HostID           *string  `json:"hostId,omitempty" db:"host_id"`
	Title            string   `json:"title" db:"title"`
	Location         string   `json:"location" db:"location"`
	Price            float64  `json:"price" db:"price"`
	Rating           float64  `json:"rating" db:"rating"`
	ReviewCount      int      `json:"reviewCount" db:"review_count"`
	ImageURLs        []string `json:"imageUrls" db:"image_urls"`
	Description      string   `json:"description,omitempty" db:"description"`
	Category         string   `json:"category" db:"category"`
	Amenities        []string `json:"amenities" db:"amenities"`
	Latitude         *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude        *float64 `json:"longitude,omitempty" db:"longitude"`
	HoursOfOperation string   `json:"hoursOfOperation,omitempty" db:"hours_of_operation"`
	DistanceFromMe   float64  `json:"distanceFromMe"`
	IsOpen           *bool    `json:"isOpen,omitempty"`
	CreatedAt        string   `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt        string   `json:"updatedAt,omitempty" db:"updated_at"`
}

// CreateListingInput is the payload for host listing creation.
type CreateListingInput struct {
	Title            string   `json:"title" binding:"required"`
	Location         string   `json:"location" binding:"required"`
	Price            float64  `json:"price" binding:"required,gte=0"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Amenities        []string `json:"amenities"`
	ImageURLs        []string `json:"imageUrls"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	HoursOfOperation string   `json:"hoursOfOperation"`
}
