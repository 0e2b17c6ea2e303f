package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexpass/gympass-backend-go/internal/models"
	"github.com/flexpass/gympass-backend-go/internal/repository"
)

func f64(v float64) *float64 { return &v }

// 2026-03-02 is a Monday.
var discoverNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

// newListingService seeds a gym at known coordinates, one across the
// country, and one with no coordinates.
func newListingService(t *testing.T) (*ListingService, *testFixtures) {
	t.Helper()

	db := newTestDB(t)
	svc := NewListingService(repository.NewListingRepository(db))

	fx := &testFixtures{
		near:      seedListing(t, db, &models.Listing{Title: "Mission Gym", Location: "San Francisco, CA", Price: 15, Rating: 4.9, Latitude: f64(37.7749), Longitude: f64(-122.4194)}),
		far:       seedListing(t, db, &models.Listing{Title: "Downtown LA Gym", Location: "Los Angeles, CA", Price: 20, Rating: 4.8, Latitude: f64(34.0522), Longitude: f64(-118.2437)}),
		unlocated: seedListing(t, db, &models.Listing{Title: "Pop-up Gym", Location: "Anywhere", Price: 10, Rating: 4.7}),
	}
	return svc, fx
}

type testFixtures struct {
	near, far, unlocated *models.Listing
}

func listingIDs(listings []models.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestListingService_Discover_AnnotatesDistance(t *testing.T) {
	svc, fx := newListingService(t)

	// Caller is at the near gym's coordinates.
	out, err := svc.Discover(models.ListingFilter{Lat: f64(37.7749), Lon: f64(-122.4194)}, discoverNow)
	require.NoError(t, err)
	require.Len(t, out, 3)

	byID := make(map[string]models.Listing)
	for _, l := range out {
		byID[l.ID] = l
	}
	assert.Equal(t, 0.0, byID[fx.near.ID].DistanceFromMe)
	assert.InDelta(t, 347.4, byID[fx.far.ID].DistanceFromMe, 2.0)
	assert.Equal(t, 0.0, byID[fx.unlocated.ID].DistanceFromMe)
}

func TestListingService_Discover_NearbyAppliesDefaultRadius(t *testing.T) {
	svc, fx := newListingService(t)

	out, err := svc.Discover(models.ListingFilter{
		Query: "nearby",
		Lat:   f64(37.7749),
		Lon:   f64(-122.4194),
	}, discoverNow)
	require.NoError(t, err)

	// The far gym exceeds the 50 mile default; the unlocated gym's zero
	// distance keeps it in.
	assert.ElementsMatch(t, []string{fx.near.ID, fx.unlocated.ID}, listingIDs(out))
}

func TestListingService_Discover_NearbyExplicitRadiusWins(t *testing.T) {
	svc, _ := newListingService(t)

	out, err := svc.Discover(models.ListingFilter{
		Query:       "Nearby",
		Lat:         f64(37.7749),
		Lon:         f64(-122.4194),
		MaxDistance: f64(1000),
	}, discoverNow)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestListingService_Discover_NearbyWithoutCoordinates(t *testing.T) {
	svc, _ := newListingService(t)

	// No coordinates: nearby degrades to "no text filter" with no radius.
	out, err := svc.Discover(models.ListingFilter{Query: "nearby"}, discoverNow)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestListingService_Discover_SortAndFilters(t *testing.T) {
	svc, fx := newListingService(t)

	out, err := svc.Discover(models.ListingFilter{SortBy: "price-low"}, discoverNow)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{fx.unlocated.ID, fx.near.ID, fx.far.ID}, listingIDs(out))

	out, err = svc.Discover(models.ListingFilter{Query: "mission"}, discoverNow)
	require.NoError(t, err)
	assert.Equal(t, []string{fx.near.ID}, listingIDs(out))

	out, err = svc.Discover(models.ListingFilter{PriceMax: f64(12)}, discoverNow)
	require.NoError(t, err)
	assert.Equal(t, []string{fx.unlocated.ID}, listingIDs(out))
}

func TestListingService_Discover_AnnotatesOpenStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(repository.NewListingRepository(db))

	open := seedListing(t, db, &models.Listing{
		Title:            "Weekday Gym",
		HoursOfOperation: "Monday: 6:00 AM – 9:00 PM · Tuesday: Closed",
	})
	noHours := seedListing(t, db, &models.Listing{Title: "Mystery Gym"})

	out, err := svc.Discover(models.ListingFilter{}, discoverNow)
	require.NoError(t, err)

	byID := make(map[string]models.Listing)
	for _, l := range out {
		byID[l.ID] = l
	}

	require.NotNil(t, byID[open.ID].IsOpen)
	assert.True(t, *byID[open.ID].IsOpen)
	assert.Nil(t, byID[noHours.ID].IsOpen)

	// 2026-03-03 is a Tuesday, when the gym is closed.
	tuesday := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	out, err = svc.Discover(models.ListingFilter{}, tuesday)
	require.NoError(t, err)
	for _, l := range out {
		if l.ID == open.ID {
			require.NotNil(t, l.IsOpen)
			assert.False(t, *l.IsOpen)
		}
	}
}

func TestListingService_GetListingDetail(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(repository.NewListingRepository(db))

	listing := seedListing(t, db, &models.Listing{
		Title:            "Scheduled Gym",
		HoursOfOperation: "Monday: 6:00 AM – 9:00 PM · Tuesday: Closed",
	})

	// 2026-03-02 is a Monday.
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	detail, err := svc.GetListingDetail(listing.ID, now)
	require.NoError(t, err)
	require.NotNil(t, detail)

	require.NotNil(t, detail.PlaceStatus)
	assert.True(t, detail.PlaceStatus.IsOpen)
	assert.Equal(t, "9:00 PM", detail.PlaceStatus.ClosesAt)
	require.NotEmpty(t, detail.HoursByDay)
	assert.Equal(t, "Monday", detail.HoursByDay[0].DayName)

	missing, err := svc.GetListingDetail("no-such-id", now)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListingService_GetListingDetail_NoHours(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(repository.NewListingRepository(db))

	listing := seedListing(t, db, &models.Listing{Title: "No Hours Gym"})

	detail, err := svc.GetListingDetail(listing.ID, time.Now())
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Nil(t, detail.PlaceStatus)
	assert.Empty(t, detail.HoursByDay)
}

func TestListingService_CreateListing_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(repository.NewListingRepository(db))
	host := seedUser(t, db, "Host Person")

	created, err := svc.CreateListing(host.ID, models.CreateListingInput{
		Title:    "  New Gym  ",
		Location: "Oakland, CA",
		Price:    18,
		Category: "NotARealCategory",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "New Gym", created.Title)
	assert.Equal(t, 5.0, created.Rating)
	assert.Equal(t, 0, created.ReviewCount)
	assert.Equal(t, models.CategoryBoutique, created.Category)
	require.Len(t, created.ImageURLs, 1)
	require.NotNil(t, created.HostID)
	assert.Equal(t, host.ID, *created.HostID)

	// Round-trips through the database.
	got, err := svc.GetListing(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New Gym", got.Title)
}
