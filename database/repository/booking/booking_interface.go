package bookingRepo

import (
	"time"

	"saathi/models"
)

// BookingRepository defines methods for booking data access. Lookup
// methods return (nil, nil) when no document matches.
type BookingRepository interface {
	// Create inserts a new booking.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// HasActiveBooking reports whether the customer holds a booking in
	// MATCHED, ACCEPTED or IN_PROGRESS.
	HasActiveBooking(customerID string) (bool, error)
	// ListByCustomer returns all bookings made by the customer.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByWorker returns all bookings assigned to the worker profile.
	ListByWorker(workerID string) ([]models.Booking, error)
	// ListCompletedByWorker returns the worker's COMPLETED bookings.
	ListCompletedByWorker(workerID string) ([]models.Booking, error)
	// UpdateStatus writes the booking status.
	UpdateStatus(id string, status models.BookingStatus) error
	// Complete atomically marks the booking COMPLETED, stamps
	// completedAt, and increments the worker's jobsCompleted counter.
	// Both writes happen in one transaction; a booking that is already
	// COMPLETED is left untouched and reported via the bool.
	Complete(id, workerID string, completedAt time.Time) (bool, error)
}
