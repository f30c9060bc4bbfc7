package earnings

import (
	"context"
	"time"

	bookingRepo "saathi/database/repository/booking"
	userRepo "saathi/database/repository/user"
	workerRepo "saathi/database/repository/worker"
	"saathi/models"
	"saathi/services/intelligence"
)

// EarningsService derives earnings and forward projections from
// completed-booking history. It never mutates booking or worker state.
type EarningsService interface {
	// Summary aggregates the worker's completed bookings.
	Summary(workerUserID string) (*models.EarningsResponse, error)
	// PredictIncome asks the forecast model for next week's projection.
	PredictIncome(ctx context.Context, workerUserID string) (*models.PredictionResponse, error)
}

// DefaultEarningsService implements EarningsService.
type DefaultEarningsService struct {
	Workers  workerRepo.WorkerRepository
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	AI       intelligence.Service

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultEarningsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
