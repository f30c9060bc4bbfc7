package workerRepo

import "saathi/models"

// SearchCriteria filters the worker search. Empty fields match anything.
// Skill is expected in canonical upper-case form.
type SearchCriteria struct {
	Skill         string
	City          string
	AvailableOnly bool
}

// WorkerRepository defines methods for worker-profile data access.
// Lookup methods return (nil, nil) when no document matches.
type WorkerRepository interface {
	// Create inserts a new worker profile.
	Create(worker *models.WorkerProfile) error
	// GetByID retrieves a profile by its unique ID.
	GetByID(id string) (*models.WorkerProfile, error)
	// GetByUserID retrieves the profile belonging to a user.
	GetByUserID(userID string) (*models.WorkerProfile, error)
	// Search returns profiles matching the criteria, sorted by rating descending.
	Search(criteria SearchCriteria) ([]models.WorkerProfile, error)
	// SetAvailability writes the availability flag.
	SetAvailability(id string, available bool) error
	// SetSkills replaces the skill set.
	SetSkills(id string, skills []string) error
	// SetRating writes the rolling rating.
	SetRating(id string, rating float64) error
	// SetVerification writes the verification workflow fields.
	SetVerification(id string, status models.VerificationStatus, verified bool, lastFour string) error
}
