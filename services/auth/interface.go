package auth

import (
	"context"
	"time"

	userRepo "saathi/database/repository/user"
	workerRepo "saathi/database/repository/worker"
	"saathi/models"
	"saathi/services/intelligence"
)

// AuthService handles account registration and sign-in.
type AuthService interface {
	// Register creates a user (and a worker profile for WORKER role).
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	// RegisterFromVoice extracts a registration from spoken audio and
	// registers the worker.
	RegisterFromVoice(ctx context.Context, audio []byte, filename string) (*models.AuthResponse, error)
	// ParseVoiceRegistration extracts and validates a spoken
	// registration without persisting anything.
	ParseVoiceRegistration(ctx context.Context, audio []byte, filename string) (*models.RegisterRequest, error)
	// SignIn verifies credentials and issues a token.
	SignIn(email, password string) (*models.AuthResponse, error)
	// Me returns the caller's identity record.
	Me(userID string) (*models.AuthResponse, error)
	// SignOut revokes the caller's cached session.
	SignOut(userID string) error
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Users    userRepo.UserRepository
	Workers  workerRepo.WorkerRepository
	AI       intelligence.Service
	TokenTTL time.Duration
}
