package models

import (
	"strings"
	"time"
)

// VerificationStatus tracks the identity-verification workflow.
type VerificationStatus string

const (
	VerificationNotSubmitted VerificationStatus = "NOT_SUBMITTED"
	VerificationPending      VerificationStatus = "PENDING"
	VerificationApproved     VerificationStatus = "APPROVED"
	VerificationRejected     VerificationStatus = "REJECTED"
)

// WorkerProfile is the marketplace-facing record for a WORKER user.
// Skills hold canonical upper-case tags from the closed vocabulary.
type WorkerProfile struct {
	ID                 string             `bson:"id" json:"id"`
	UserID             string             `bson:"userId" json:"userId"`
	Skills             []string           `bson:"skills" json:"skills"`
	City               string             `bson:"city" json:"city"`
	Latitude           float64            `bson:"latitude" json:"latitude"`
	Longitude          float64            `bson:"longitude" json:"longitude"`
	Available          bool               `bson:"available" json:"available"`
	Rating             float64            `bson:"rating" json:"rating"`
	JobsCompleted      int                `bson:"jobsCompleted" json:"jobsCompleted"`
	PricePerHour       float64            `bson:"pricePerHour" json:"pricePerHour"`
	VerificationStatus VerificationStatus `bson:"verificationStatus" json:"verificationStatus"`
	Verified           bool               `bson:"verified" json:"verified"`
	AadhaarLastFour    string             `bson:"aadhaarLastFour,omitempty" json:"-"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"-"`
}

// HasSkill reports whether the profile carries the given tag,
// compared case-insensitively.
func (w *WorkerProfile) HasSkill(tag string) bool {
	for _, s := range w.Skills {
		if strings.EqualFold(s, tag) {
			return true
		}
	}
	return false
}

// WorkerSummary is the worker shape exposed to customers during search.
type WorkerSummary struct {
	WorkerID      string   `json:"workerId"`
	UserID        string   `json:"userId"`
	Name          string   `json:"name"`
	Skills        []string `json:"skills"`
	City          string   `json:"city"`
	Rating        float64  `json:"rating"`
	JobsCompleted int      `json:"jobsCompleted"`
	PricePerHour  float64  `json:"pricePerHour"`
	Verified      bool     `json:"verified"`
}
