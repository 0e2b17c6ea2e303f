// Package discovery implements the listing filter and sort pipeline: a pure,
// stateless transform from the full listing collection plus the caller's
// criteria to the subset to display, in the requested order.
package discovery

import (
	"math"
	"sort"
	"strings"

	"github.com/flexpass/gympass-backend-go/internal/models"
)

// SortOption selects one of the four supported total orderings.
type SortOption string

const (
	SortDistance  SortOption = "distance"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortRating    SortOption = "rating"
)

// Criteria holds the AND-combined filter predicates. A nil/empty criterion
// applies no constraint. The pipeline performs no validation: callers are
// expected to have coerced malformed numeric inputs to nil already, and any
// query sentinel handling (e.g. "nearby") happens before this layer.
type Criteria struct {
	Query       string
	Category    string
	PriceMin    *float64
	PriceMax    *float64
	MaxDistance *float64
	MinRating   *float64
	Amenities   []string
}

// Filter returns the listings matching every present criterion. The input
// slice is never mutated; when no criterion is present it is returned as is.
func Filter(listings []models.Listing, c Criteria) []models.Listing {
	filtered := listings

	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		filtered = keep(filtered, func(l models.Listing) bool {
			return strings.Contains(strings.ToLower(l.Title), q) ||
				strings.Contains(strings.ToLower(l.Location), q)
		})
	}

	if c.Category != "" && c.Category != models.CategoryAll {
		filtered = keep(filtered, func(l models.Listing) bool {
			category := l.Category
			if category == "" {
				category = models.CategoryBoutique
			}
			return category == c.Category
		})
	}

	if present(c.PriceMin) {
		filtered = keep(filtered, func(l models.Listing) bool {
			return l.Price >= *c.PriceMin
		})
	}
	if present(c.PriceMax) {
		filtered = keep(filtered, func(l models.Listing) bool {
			return l.Price <= *c.PriceMax
		})
	}

	if present(c.MaxDistance) {
		// Listings without a computed distance carry 0 and therefore pass
		// any positive cap: an unlocated gym is never filtered out here.
		filtered = keep(filtered, func(l models.Listing) bool {
			return l.DistanceFromMe <= *c.MaxDistance
		})
	}

	if present(c.MinRating) && *c.MinRating > 0 {
		filtered = keep(filtered, func(l models.Listing) bool {
			return l.Rating >= *c.MinRating
		})
	}

	if len(c.Amenities) > 0 {
		filtered = keep(filtered, func(l models.Listing) bool {
			return hasAllAmenities(l.Amenities, c.Amenities)
		})
	}

	return filtered
}

// hasAllAmenities reports whether every requested amenity matches, case
// insensitively, as a substring of at least one listing amenity label.
func hasAllAmenities(labels, requested []string) bool {
	lowered := make([]string, len(labels))
	for i, a := range labels {
		lowered[i] = strings.ToLower(a)
	}
	for _, want := range requested {
		w := strings.ToLower(want)
		found := false
		for _, label := range lowered {
			if strings.Contains(label, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Sort returns a sorted shallow copy of listings; ties keep their input
// order and the input slice is never mutated. An unknown option returns the
// copy unsorted.
func Sort(listings []models.Listing, by SortOption) []models.Listing {
	sorted := append([]models.Listing(nil), listings...)
	switch by {
	case SortDistance:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DistanceFromMe < sorted[j].DistanceFromMe
		})
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}
	return sorted
}

func keep(in []models.Listing, pred func(models.Listing) bool) []models.Listing {
	out := make([]models.Listing, 0, len(in))
	for _, l := range in {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}

func present(v *float64) bool {
	return v != nil && !math.IsNaN(*v)
}
