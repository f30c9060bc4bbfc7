package rating

import (
	"errors"
	"math"
	"time"

	ratingRepo "saathi/database/repository/rating"
	"saathi/models"
	"saathi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit records a rating for a completed booking. Only the owning
// customer may rate, only once; uniqueness is enforced by the store's
// insert rather than a prior read, so concurrent submissions cannot
// both land.
func (s *DefaultRatingService) Submit(customerID string, req models.RatingRequest) (*models.RatingResponse, error) {
	booking, err := s.Bookings.GetByID(req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, models.NewNotFoundError("booking not found")
	}
	if booking.CustomerID != customerID {
		return nil, models.NewForbiddenError("you can only rate your own bookings")
	}
	if booking.Status != models.BookingCompleted {
		return nil, models.NewConflictError("you can only rate a completed booking")
	}
	if req.Score < 1 || req.Score > 5 {
		return nil, models.NewValidationError("score must be between 1 and 5")
	}

	rating := &models.Rating{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		Score:     req.Score,
		Comment:   req.Comment,
		RatedAt:   time.Now(),
	}
	if err := s.Ratings.Create(rating); err != nil {
		if errors.Is(err, ratingRepo.ErrAlreadyRated) {
			return nil, models.NewConflictError("you have already rated this booking")
		}
		return nil, err
	}

	if err := s.recalculateWorkerRating(booking.WorkerID, req.Score); err != nil {
		return nil, err
	}

	return s.toResponse(rating, booking)
}

// recalculateWorkerRating folds the new score into the worker's stored
// average. jobsCompleted was already incremented when the booking
// completed, so it counts this job.
//
// The formula treats every prior job as having contributed the running
// average, including completed jobs that were never rated. Mobile
// clients display exactly this figure.
func (s *DefaultRatingService) recalculateWorkerRating(workerID string, score int) error {
	worker, err := s.Workers.GetByID(workerID)
	if err != nil {
		return err
	}
	if worker == nil {
		return models.NewNotFoundError("worker not found")
	}

	jobs := worker.JobsCompleted
	var newAverage float64
	if jobs <= 1 {
		// First job: the rating is exactly its own score, overriding
		// the 5.0 default.
		newAverage = float64(score)
	} else {
		newAverage = ((worker.Rating * float64(jobs-1)) + float64(score)) / float64(jobs)
	}

	rounded := RoundRating(newAverage)
	if err := s.Workers.SetRating(worker.ID, rounded); err != nil {
		return err
	}

	utils.GetLogger().Info("recalculated worker rating",
		zap.String("workerId", worker.ID),
		zap.Int("jobs", jobs),
		zap.Float64("rating", rounded))
	return nil
}

// RoundRating rounds half-up to one decimal place.
func RoundRating(value float64) float64 {
	return math.Round(value*10) / 10
}

// ForBooking returns the rating attached to a booking, joined with
// display names.
func (s *DefaultRatingService) ForBooking(bookingID string) (*models.RatingResponse, error) {
	rating, err := s.Ratings.GetByBookingID(bookingID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, models.NewNotFoundError("no rating found for this booking")
	}

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, models.NewNotFoundError("booking not found")
	}
	return s.toResponse(rating, booking)
}

func (s *DefaultRatingService) toResponse(rating *models.Rating, booking *models.Booking) (*models.RatingResponse, error) {
	resp := &models.RatingResponse{
		RatingID:  rating.ID,
		BookingID: rating.BookingID,
		Score:     rating.Score,
		Comment:   rating.Comment,
		RatedAt:   rating.RatedAt,
	}

	customer, err := s.Users.GetByID(booking.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		resp.CustomerName = customer.Name
	}

	worker, err := s.Workers.GetByID(booking.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker != nil {
		workerUser, err := s.Users.GetByID(worker.UserID)
		if err != nil {
			return nil, err
		}
		if workerUser != nil {
			resp.WorkerName = workerUser.Name
		}
	}
	return resp, nil
}
