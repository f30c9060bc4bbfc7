package worker

import (
	"regexp"
	"strings"

	"saathi/models"
	"saathi/utils"

	"go.uber.org/zap"
)

var aadhaarPattern = regexp.MustCompile(`^\d{12}$`)

// SubmitAadhaar validates the identity-document number, stores only its
// last four digits, and moves the workflow to PENDING.
func (s *DefaultWorkerService) SubmitAadhaar(workerUserID, aadhaarNumber string) (*models.VerificationResponse, error) {
	profile, err := s.Workers.GetByUserID(workerUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("worker profile not found")
	}

	aadhaar := strings.Join(strings.Fields(aadhaarNumber), "")
	if !aadhaarPattern.MatchString(aadhaar) {
		return nil, models.NewValidationError("invalid Aadhaar number, must be 12 digits")
	}

	if profile.Verified {
		return nil, models.NewConflictError("worker is already verified")
	}

	// The full document number is never persisted.
	lastFour := aadhaar[8:]
	if err := s.Workers.SetVerification(profile.ID, models.VerificationPending, false, lastFour); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("aadhaar submitted", zap.String("workerId", profile.ID))

	return s.verificationResponse(profile.ID, profile.UserID, models.VerificationPending, false, lastFour,
		"Aadhaar submitted successfully. Verification is pending admin approval.")
}

// ApproveVerification grants the verified badge.
func (s *DefaultWorkerService) ApproveVerification(workerID string) (*models.VerificationResponse, error) {
	profile, err := s.Workers.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("worker not found")
	}

	if err := s.Workers.SetVerification(profile.ID, models.VerificationApproved, true, profile.AadhaarLastFour); err != nil {
		return nil, err
	}
	return s.verificationResponse(profile.ID, profile.UserID, models.VerificationApproved, true, profile.AadhaarLastFour,
		"Worker verified successfully. Badge awarded.")
}

// RejectVerification declines verification.
func (s *DefaultWorkerService) RejectVerification(workerID string) (*models.VerificationResponse, error) {
	profile, err := s.Workers.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("worker not found")
	}

	if err := s.Workers.SetVerification(profile.ID, models.VerificationRejected, false, profile.AadhaarLastFour); err != nil {
		return nil, err
	}
	return s.verificationResponse(profile.ID, profile.UserID, models.VerificationRejected, false, profile.AadhaarLastFour,
		"Verification rejected.")
}

// VerificationStatus reports the caller's verification state.
func (s *DefaultWorkerService) VerificationStatus(workerUserID string) (*models.VerificationResponse, error) {
	profile, err := s.Workers.GetByUserID(workerUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("worker profile not found")
	}

	status := profile.VerificationStatus
	if status == "" {
		status = models.VerificationNotSubmitted
	}
	message := "Not verified yet"
	if profile.Verified {
		message = "Verified worker"
	}
	return s.verificationResponse(profile.ID, profile.UserID, status, profile.Verified, profile.AadhaarLastFour, message)
}

func (s *DefaultWorkerService) verificationResponse(workerID, userID string, status models.VerificationStatus, verified bool, lastFour, message string) (*models.VerificationResponse, error) {
	name := ""
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		name = user.Name
	}
	return &models.VerificationResponse{
		WorkerID:           workerID,
		WorkerName:         name,
		Verified:           verified,
		VerificationStatus: string(status),
		AadhaarLastFour:    lastFour,
		Message:            message,
	}, nil
}
