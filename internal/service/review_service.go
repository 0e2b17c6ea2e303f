package service

import (
	"errors"

	"github.com/flexpass/gympass-backend-go/internal/models"
	"github.com/flexpass/gympass-backend-go/internal/repository"
)

// ErrInvalidRating is returned for ratings outside 1-5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ReviewService handles listing reviews
type ReviewService struct {
	reviews  *repository.ReviewRepository
	listings *repository.ListingRepository
	users    *repository.UserRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviews *repository.ReviewRepository, listings *repository.ListingRepository, users *repository.UserRepository) *ReviewService {
	return &ReviewService{reviews: reviews, listings: listings, users: users}
}

// ListReviews retrieves a listing's reviews, newest first
func (s *ReviewService) ListReviews(listingID string) ([]models.Review, error) {
	return s.reviews.GetReviewsByListing(listingID)
}

// AddReview posts a review for the user and updates the listing's aggregate
// rating
func (s *ReviewService) AddReview(userID, listingID string, input models.CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	listing, err := s.listings.GetListingByID(listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	authorName := "Guest"
	if user, err := s.users.GetUserByID(userID); err == nil && user != nil && user.FullName != "" {
		authorName = user.FullName
	}

	review := &models.Review{
		ListingID:  listingID,
		UserID:     userID,
		AuthorName: authorName,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := s.reviews.InsertReview(review); err != nil {
		return nil, err
	}
	return review, nil
}
