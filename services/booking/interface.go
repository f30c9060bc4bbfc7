package booking

import (
	bookingRepo "saathi/database/repository/booking"
	userRepo "saathi/database/repository/user"
	workerRepo "saathi/database/repository/worker"
	"saathi/models"
)

// BookingService owns the booking lifecycle: eligible-worker listing,
// creation and the worker-driven state transitions.
type BookingService interface {
	// EligibleWorkers lists available workers for the requested skill
	// (and optionally city), sorted by rating descending. An empty
	// result is reported as a user-facing not-found failure.
	EligibleWorkers(skill, city string) ([]models.WorkerSummary, error)
	// Create confirms a chosen worker and opens a MATCHED booking.
	Create(customerID string, req models.CreateBookingRequest) (*models.BookingResponse, error)
	// MyBookings returns the customer's bookings.
	MyBookings(customerID string) ([]models.BookingResponse, error)
	// WorkerJobs returns all bookings assigned to the worker.
	WorkerJobs(workerUserID string) ([]models.BookingResponse, error)
	// Accept transitions the booking to ACCEPTED (worker-only).
	Accept(bookingID, workerUserID string) (*models.BookingResponse, error)
	// Complete transitions the booking to COMPLETED and credits the
	// worker's job counter atomically (worker-only).
	Complete(bookingID, workerUserID string) (*models.BookingResponse, error)
	// Cancel transitions the booking to CANCELLED (customer-only).
	// Cancelling a COMPLETED booking is a conflict; cancelling an
	// already-CANCELLED one is idempotent.
	Cancel(bookingID, customerID string) (*models.BookingResponse, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Workers  workerRepo.WorkerRepository
	Users    userRepo.UserRepository
}
