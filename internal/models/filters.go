package models

// ListingFilter represents discovery query parameters for listings.
// All criteria are optional; an absent criterion applies no constraint.
type ListingFilter struct {
	Query       string   `form:"query"`
	Category    string   `form:"category"`    // All, 24/7, CrossFit, Yoga, Pool, Boutique, Budget
	PriceMin    *float64 `form:"priceMin"`    // Inclusive, currency units
	PriceMax    *float64 `form:"priceMax"`    // Inclusive
	MaxDistance *float64 `form:"maxDistance"` // Inclusive, statute miles
	MinRating   *float64 `form:"minRating"`   // Inclusive, applied only when > 0
	Amenities   []string `form:"amenity"`     // Repeated; every one must match
	SortBy      string   `form:"sortBy"`      // distance, price-low, price-high, rating
	Lat         *float64 `form:"lat"`         // Caller coordinates for distance annotation
	Lon         *float64 `form:"lon"`
}
