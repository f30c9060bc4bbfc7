package auth

import (
	"strings"
	"time"

	"saathi/models"
	"saathi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates the user record, hashing the credential. A WORKER
// registration also creates the marketplace profile with its defaults
// (available, rating 5.0, zero jobs).
func (s *DefaultAuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	role := models.Role(strings.ToUpper(strings.TrimSpace(req.Role)))
	if role != models.RoleCustomer && role != models.RoleWorker {
		return nil, models.NewValidationError("role is required: CUSTOMER or WORKER")
	}

	existing, err := s.Users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("email already registered")
	}

	existing, err = s.Users.GetByPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("phone already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Language:     req.Language,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}

	if role == models.RoleWorker {
		skills := make([]string, 0, len(req.Skills))
		for _, tag := range req.Skills {
			canonical := utils.CanonicalSkill(tag)
			if canonical != "" {
				skills = append(skills, canonical)
			}
		}
		profile := &models.WorkerProfile{
			ID:                 uuid.New().String(),
			UserID:             user.ID,
			Skills:             skills,
			City:               req.City,
			Latitude:           req.Latitude,
			Longitude:          req.Longitude,
			Available:          true,
			Rating:             5.0,
			JobsCompleted:      0,
			PricePerHour:       req.PricePerHour,
			VerificationStatus: models.VerificationNotSubmitted,
		}
		if err := s.Workers.Create(profile); err != nil {
			return nil, err
		}
	}

	utils.GetLogger().Info("registered user",
		zap.String("userId", user.ID), zap.String("role", string(role)))

	return &models.AuthResponse{
		UserID:  user.ID,
		Name:    user.Name,
		Phone:   user.Phone,
		Email:   user.Email,
		Role:    string(user.Role),
		Message: "Registration successful",
	}, nil
}

// SignIn verifies the credential and issues a JWT, caching the token
// hash so the session can be revoked before expiry.
func (s *DefaultAuthService) SignIn(email, password string) (*models.AuthResponse, error) {
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.NewForbiddenError("invalid credentials")
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	token, err := utils.GenerateToken(user.ID, user.Email, ttl)
	if err != nil {
		return nil, err
	}
	if err := utils.StoreAuthSession(user.ID, utils.HashToken(token), ttl); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		UserID: user.ID,
		Name:   user.Name,
		Phone:  user.Phone,
		Email:  user.Email,
		Role:   string(user.Role),
		Token:  token,
	}, nil
}

// Me returns the caller's identity record.
func (s *DefaultAuthService) Me(userID string) (*models.AuthResponse, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("user not found")
	}
	return &models.AuthResponse{
		UserID: user.ID,
		Name:   user.Name,
		Phone:  user.Phone,
		Email:  user.Email,
		Role:   string(user.Role),
	}, nil
}

// SignOut revokes the caller's cached session.
func (s *DefaultAuthService) SignOut(userID string) error {
	return utils.RevokeAuthSession(userID)
}
