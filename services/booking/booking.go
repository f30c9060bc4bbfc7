package booking

import (
	"time"

	"saathi/models"
	"saathi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create confirms a chosen worker. The customer must not hold another
// in-flight booking, and the worker must exist and be available.
// Availability is deliberately not cleared on match; a worker who stays
// online can be matched by more than one customer.
//
// The active-booking check is read-then-insert; two racing creations
// for the same customer can both pass it. Kept as-is, see DESIGN.md.
func (s *DefaultBookingService) Create(customerID string, req models.CreateBookingRequest) (*models.BookingResponse, error) {
	customer, err := s.Users.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, models.NewNotFoundError("customer not found")
	}

	active, err := s.Bookings.HasActiveBooking(customerID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, models.NewConflictError("you already have an active booking, complete or cancel it before creating a new one")
	}

	worker, err := s.Workers.GetByID(req.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, models.NewNotFoundError("worker not found")
	}
	if !worker.Available {
		return nil, models.NewConflictError("worker is not available")
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		WorkerID:    worker.ID,
		Skill:       utils.CanonicalSkill(req.Skill),
		Description: req.Description,
		Status:      models.BookingMatched,
		CreatedAt:   time.Now(),
	}
	if err := s.Bookings.Create(booking); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("created booking",
		zap.String("bookingId", booking.ID),
		zap.String("customerId", customerID),
		zap.String("workerId", worker.ID))

	return s.toResponse(booking)
}

// MyBookings returns the customer's bookings.
func (s *DefaultBookingService) MyBookings(customerID string) ([]models.BookingResponse, error) {
	customer, err := s.Users.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, models.NewNotFoundError("user not found")
	}

	bookings, err := s.Bookings.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(bookings)
}

// WorkerJobs returns all bookings assigned to the worker.
func (s *DefaultBookingService) WorkerJobs(workerUserID string) ([]models.BookingResponse, error) {
	profile, err := s.Workers.GetByUserID(workerUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("worker profile not found")
	}

	bookings, err := s.Bookings.ListByWorker(profile.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(bookings)
}

// assignedBooking loads the booking and verifies the caller is its
// assigned worker.
func (s *DefaultBookingService) assignedBooking(bookingID, workerUserID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, models.NewNotFoundError("booking not found")
	}

	worker, err := s.Workers.GetByID(booking.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil || worker.UserID != workerUserID {
		return nil, models.NewForbiddenError("you are not assigned to this booking")
	}
	return booking, nil
}

// Accept transitions the booking to ACCEPTED. Beyond the identity check
// there is no state precondition; re-accepting is effectively idempotent.
func (s *DefaultBookingService) Accept(bookingID, workerUserID string) (*models.BookingResponse, error) {
	booking, err := s.assignedBooking(bookingID, workerUserID)
	if err != nil {
		return nil, err
	}

	if err := s.Bookings.UpdateStatus(booking.ID, models.BookingAccepted); err != nil {
		return nil, err
	}
	booking.Status = models.BookingAccepted
	return s.toResponse(booking)
}

// Complete transitions the booking to COMPLETED and increments the
// worker's job counter. The repository performs both writes in one
// transaction, so concurrent completion attempts credit the counter
// exactly once.
func (s *DefaultBookingService) Complete(bookingID, workerUserID string) (*models.BookingResponse, error) {
	booking, err := s.assignedBooking(bookingID, workerUserID)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now()
	completed, err := s.Bookings.Complete(booking.ID, booking.WorkerID, completedAt)
	if err != nil {
		return nil, err
	}
	if completed {
		booking.Status = models.BookingCompleted
		booking.CompletedAt = &completedAt
		utils.GetLogger().Info("completed booking",
			zap.String("bookingId", booking.ID), zap.String("workerId", booking.WorkerID))
	}
	return s.toResponse(booking)
}

// Cancel transitions the booking to CANCELLED. Only the owning customer
// may cancel; a COMPLETED booking cannot be cancelled; cancelling an
// already-CANCELLED booking succeeds.
func (s *DefaultBookingService) Cancel(bookingID, customerID string) (*models.BookingResponse, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, models.NewNotFoundError("booking not found")
	}
	if booking.CustomerID != customerID {
		return nil, models.NewForbiddenError("you are not the customer for this booking")
	}
	if booking.Status == models.BookingCompleted {
		return nil, models.NewConflictError("cannot cancel a completed booking")
	}

	if err := s.Bookings.UpdateStatus(booking.ID, models.BookingCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled
	return s.toResponse(booking)
}

func (s *DefaultBookingService) toResponses(bookings []models.Booking) ([]models.BookingResponse, error) {
	responses := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp, err := s.toResponse(&bookings[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// toResponse joins the booking with customer and worker display data.
func (s *DefaultBookingService) toResponse(booking *models.Booking) (*models.BookingResponse, error) {
	resp := &models.BookingResponse{
		BookingID:   booking.ID,
		Skill:       booking.Skill,
		Description: booking.Description,
		Status:      string(booking.Status),
		CreatedAt:   booking.CreatedAt,
		CompletedAt: booking.CompletedAt,
	}

	customer, err := s.Users.GetByID(booking.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		resp.CustomerName = customer.Name
		resp.CustomerEmail = customer.Email
	}

	worker, err := s.Workers.GetByID(booking.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker != nil {
		resp.WorkerSkills = worker.Skills
		resp.WorkerCity = worker.City
		resp.WorkerRating = worker.Rating
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
