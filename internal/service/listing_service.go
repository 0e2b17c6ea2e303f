package service

import (
	"strings"
	"time"

	"github.com/flexpass/gympass-backend-go/internal/discovery"
	"github.com/flexpass/gympass-backend-go/internal/hours"
	"github.com/flexpass/gympass-backend-go/internal/models"
	"github.com/flexpass/gympass-backend-go/internal/repository"
	"github.com/flexpass/gympass-backend-go/internal/spatial"
)

// DefaultMaxDistanceMiles is applied in nearby mode when the caller supplied
// coordinates but no explicit distance cap.
const DefaultMaxDistanceMiles = 50.0

// NearbyQuery is the free-text sentinel meaning "no text filter, use
// geography instead". It is resolved here, before the discovery pipeline,
// which stays blind to it.
const NearbyQuery = "nearby"

const placeholderImageURL = "https://picsum.photos/seed/placeholder/400/300"

// ListingDetail is a listing plus its resolved schedule for the detail page.
type ListingDetail struct {
	models.Listing
	PlaceStatus *hours.PlaceStatus `json:"placeStatus"`
	HoursByDay  []hours.DayHours   `json:"hoursByDay"`
}

// ListingService handles listing discovery and creation
type ListingService struct {
	repo *repository.ListingRepository
}

// NewListingService creates a new listing service
func NewListingService(repo *repository.ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

// Discover loads all listings, annotates distance from the caller's
// coordinates and the open/closed badge at the given instant, applies the
// filter criteria and sorts the result.
func (s *ListingService) Discover(filter models.ListingFilter, now time.Time) ([]models.Listing, error) {
	listings, err := s.repo.GetListings()
	if err != nil {
		return nil, err
	}

	for i := range listings {
		l := &listings[i]
		l.IsOpen = hours.IsOpenNow(l.HoursOfOperation, now)
		if filter.Lat != nil && filter.Lon != nil && l.Latitude != nil && l.Longitude != nil {
			l.DistanceFromMe = spatial.DistanceMiles(*filter.Lat, *filter.Lon, *l.Latitude, *l.Longitude)
		}
	}

	query := filter.Query
	maxDistance := filter.MaxDistance
	if strings.ToLower(strings.TrimSpace(query)) == NearbyQuery {
		query = ""
		if maxDistance == nil && filter.Lat != nil && filter.Lon != nil {
			d := DefaultMaxDistanceMiles
			maxDistance = &d
		}
	}

	filtered := discovery.Filter(listings, discovery.Criteria{
		Query:       query,
		Category:    filter.Category,
		PriceMin:    filter.PriceMin,
		PriceMax:    filter.PriceMax,
		MaxDistance: maxDistance,
		MinRating:   filter.MinRating,
		Amenities:   filter.Amenities,
	})

	sortBy := discovery.SortOption(filter.SortBy)
	if sortBy == "" {
		sortBy = discovery.SortDistance
	}
	return discovery.Sort(filtered, sortBy), nil
}

// GetListing retrieves a single listing, or nil when absent
func (s *ListingService) GetListing(id string) (*models.Listing, error) {
	return s.repo.GetListingByID(id)
}

// GetListingDetail retrieves a listing with its opening-hours status and
// 7-day schedule resolved at the given instant. PlaceStatus is nil when the
// hours text is absent or unparseable.
func (s *ListingService) GetListingDetail(id string, now time.Time) (*ListingDetail, error) {
	listing, err := s.repo.GetListingByID(id)
	if err != nil || listing == nil {
		return nil, err
	}
	return &ListingDetail{
		Listing:     *listing,
		PlaceStatus: hours.GetPlaceStatus(listing.HoursOfOperation, now),
		HoursByDay:  hours.GetHoursByDayStartingToday(listing.HoursOfOperation, now),
	}, nil
}

// CreateListing inserts a host's new listing with product defaults: rating
// 5, no reviews, Boutique when the category is unknown, a placeholder image
// when none supplied.
func (s *ListingService) CreateListing(hostID string, input models.CreateListingInput) (*models.Listing, error) {
	imageURLs := input.ImageURLs
	if len(imageURLs) == 0 {
		imageURLs = []string{placeholderImageURL}
	}
	amenities := input.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	listing := &models.Listing{
		HostID:           &hostID,
		Title:            strings.TrimSpace(input.Title),
		Location:         strings.TrimSpace(input.Location),
		Price:            input.Price,
		Rating:           5,
		ReviewCount:      0,
		ImageURLs:        imageURLs,
		Description:      input.Description,
		Category:         models.NormalizeCategory(input.Category),
		Amenities:        amenities,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		HoursOfOperation: input.HoursOfOperation,
	}
	if err := s.repo.InsertListing(listing); err != nil {
		return nil, err
	}
	return listing, nil
}
