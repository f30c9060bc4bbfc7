package ratingRepo

import (
	"errors"

	"saathi/models"
)

// ErrAlreadyRated is returned when a rating already exists for the
// booking. Uniqueness is enforced by the store, not by a prior read.
var ErrAlreadyRated = errors.New("rating already exists for this booking")

// RatingRepository defines methods for rating data access.
type RatingRepository interface {
	// Create inserts a new rating. Returns ErrAlreadyRated when the
	// booking already has one.
	Create(rating *models.Rating) error
	// GetByBookingID retrieves the rating for a booking, or (nil, nil)
	// when none exists.
	GetByBookingID(bookingID string) (*models.Rating, error)
}
