package models

import "time"

// BookingStatus is the booking lifecycle state.
type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingMatched    BookingStatus = "MATCHED"
	BookingAccepted   BookingStatus = "ACCEPTED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// ActiveBookingStatuses are the states that count as an in-flight
// engagement; a customer may hold at most one booking in these states.
func ActiveBookingStatuses() []BookingStatus {
	return []BookingStatus{BookingMatched, BookingAccepted, BookingInProgress}
}

// Booking represents one service engagement between a customer and a
// worker. Bookings are created directly into MATCHED and are never
// deleted; terminal states are COMPLETED and CANCELLED.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	CustomerID  string        `bson:"customerId" json:"customerId"`
	WorkerID    string        `bson:"workerId" json:"workerId"`
	Skill       string        `bson:"skill" json:"skill"`
	Description string        `bson:"description" json:"description"`
	Status      BookingStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	CompletedAt *time.Time    `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// CreateBookingRequest is the payload for confirming a chosen worker.
type CreateBookingRequest struct {
	WorkerID    string `json:"workerId" binding:"required"`
	Skill       string `json:"skillNeeded" binding:"required"`
	Description string `json:"description"`
}

// BookingResponse is the booking record shape exposed upward.
type BookingResponse struct {
	BookingID     string     `json:"bookingId"`
	Skill         string     `json:"skillNeeded"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	WorkerName    string     `json:"workerName,omitempty"`
	WorkerSkills  []string   `json:"workerSkills,omitempty"`
	WorkerCity    string     `json:"workerCity,omitempty"`
	WorkerRating  float64    `json:"workerRating,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}
