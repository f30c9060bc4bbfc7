package auth

import (
	"context"
	"regexp"
	"strings"

	"saathi/models"
	"saathi/services/intelligence"
	"saathi/utils"
)

const (
	defaultVoicePassword = "Saathi@1234"
	defaultPricePerHour  = 300
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)
var digitsOnly = regexp.MustCompile(`^\d{10}$`)

// ParseVoiceRegistration extracts a spoken registration and validates
// it into a RegisterRequest without persisting anything.
func (s *DefaultAuthService) ParseVoiceRegistration(ctx context.Context, audio []byte, filename string) (*models.RegisterRequest, error) {
	mimeType := intelligence.DetectAudioMimeType(filename)
	reg, err := s.AI.ExtractRegistration(ctx, audio, mimeType)
	if err != nil {
		return nil, err
	}
	return buildRegisterRequest(reg)
}

// RegisterFromVoice extracts a spoken registration and registers the
// worker in one step.
func (s *DefaultAuthService) RegisterFromVoice(ctx context.Context, audio []byte, filename string) (*models.AuthResponse, error) {
	req, err := s.ParseVoiceRegistration(ctx, audio, filename)
	if err != nil {
		return nil, err
	}
	return s.Register(*req)
}

// buildRegisterRequest validates the extracted fields and fills the
// documented defaults. Voice registration always produces a WORKER.
func buildRegisterRequest(reg *models.VoiceRegistration) (*models.RegisterRequest, error) {
	name := strings.TrimSpace(reg.Name)
	if name == "" {
		return nil, models.NewValidationError("could not detect your name, please speak clearly and try again")
	}
	if !digitsOnly.MatchString(reg.Phone) {
		return nil, models.NewValidationError("could not detect a valid 10-digit phone number, please try again")
	}

	skills := []string{}
	for _, tag := range strings.Split(reg.Skills, ",") {
		canonical := utils.CanonicalSkill(tag)
		if canonical != "" && utils.IsValidSkill(canonical) {
			skills = append(skills, canonical)
		}
	}
	if len(skills) == 0 {
		return nil, models.NewValidationError("could not detect your skills, please mention what work you do")
	}

	email := strings.TrimSpace(reg.Email)
	if email == "" {
		base := nonAlnum.ReplaceAllString(strings.ToLower(name), "")
		email = base + "@saathi.com"
	}

	password := reg.Password
	if password == "" {
		password = defaultVoicePassword
	}

	price := reg.PricePerHour
	if price <= 0 {
		price = defaultPricePerHour
	}

	return &models.RegisterRequest{
		Name:         name,
		Phone:        reg.Phone,
		Email:        email,
		Password:     password,
		Role:         string(models.RoleWorker),
		Language:     reg.Language,
		City:         reg.City,
		Latitude:     reg.Latitude,
		Longitude:    reg.Longitude,
		Skills:       skills,
		PricePerHour: price,
	}, nil
}
