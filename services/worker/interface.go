package worker

import (
	"context"

	userRepo "saathi/database/repository/user"
	workerRepo "saathi/database/repository/worker"
	"saathi/models"
	"saathi/services/intelligence"
)

// WorkerService is the registry surface: search, availability, skill
// intake and identity verification.
type WorkerService interface {
	// Search filters available workers by optional skill and city tags.
	// An empty result is a valid response.
	Search(skill, city string) ([]models.WorkerSummary, error)
	// GetByID returns a single worker summary.
	GetByID(workerID string) (*models.WorkerSummary, error)
	// ToggleAvailability flips the caller's availability flag and
	// returns the new value.
	ToggleAvailability(workerUserID string) (bool, error)
	// ExtractSkills runs audio skill intake and merges detected tags
	// into the caller's skill set.
	ExtractSkills(ctx context.Context, workerUserID string, audio []byte, filename string) (*models.SkillExtractionResponse, error)
	// SubmitAadhaar records the identity document (last four digits
	// only) and moves verification to PENDING.
	SubmitAadhaar(workerUserID, aadhaarNumber string) (*models.VerificationResponse, error)
	// ApproveVerification grants the verified badge (admin action).
	ApproveVerification(workerID string) (*models.VerificationResponse, error)
	// RejectVerification declines verification (admin action).
	RejectVerification(workerID string) (*models.VerificationResponse, error)
	// VerificationStatus reports the caller's verification state.
	VerificationStatus(workerUserID string) (*models.VerificationResponse, error)
}

// DefaultWorkerService implements WorkerService.
type DefaultWorkerService struct {
	Workers workerRepo.WorkerRepository
	Users   userRepo.UserRepository
	AI      intelligence.Service
}
