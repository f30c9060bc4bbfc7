package models

import "time"

// Rating is a 1-5 score attached to exactly one completed booking.
// Immutable after creation.
type Rating struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"bookingId" json:"bookingId"`
	Score     int       `bson:"score" json:"score"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	RatedAt   time.Time `bson:"ratedAt" json:"ratedAt"`
}

// RatingRequest is the submit-rating payload.
type RatingRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Score     int    `json:"score" binding:"required"`
	Comment   string `json:"comment"`
}

// RatingResponse joins the rating with display names.
type RatingResponse struct {
	RatingID     string    `json:"ratingId"`
	BookingID    string    `json:"bookingId"`
	WorkerName   string    `json:"workerName"`
	CustomerName string    `json:"customerName"`
	Score        int       `json:"score"`
	Comment      string    `json:"comment,omitempty"`
	RatedAt      time.Time `json:"ratedAt"`
}
