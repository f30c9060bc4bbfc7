package rating

import (
	bookingRepo "saathi/database/repository/booking"
	ratingRepo "saathi/database/repository/rating"
	userRepo "saathi/database/repository/user"
	workerRepo "saathi/database/repository/worker"
	"saathi/models"
)

// RatingService accepts one rating per completed booking and folds it
// into the worker's rolling average.
type RatingService interface {
	// Submit records the rating and recomputes the worker's average.
	Submit(customerID string, req models.RatingRequest) (*models.RatingResponse, error)
	// ForBooking returns the rating attached to a booking.
	ForBooking(bookingID string) (*models.RatingResponse, error)
}

// DefaultRatingService implements RatingService.
type DefaultRatingService struct {
	Ratings  ratingRepo.RatingRepository
	Bookings bookingRepo.BookingRepository
	Workers  workerRepo.WorkerRepository
	Users    userRepo.UserRepository
}
