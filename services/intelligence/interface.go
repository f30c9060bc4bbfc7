package intelligence

import (
	"context"

	"saathi/models"
)

// Service is the AI collaborator contract. Implementations must be
// stateless; every call carries a bounded timeout.
type Service interface {
	// ExtractSkills transcribes the audio and returns skill tags drawn
	// from the closed vocabulary. An empty slice means nothing matched.
	ExtractSkills(ctx context.Context, audio []byte, mimeType string) ([]string, error)
	// ExtractRegistration pulls a spoken worker registration out of the
	// audio payload.
	ExtractRegistration(ctx context.Context, audio []byte, mimeType string) (*models.VoiceRegistration, error)
	// PredictIncome returns the forecast model's raw narrative for the
	// given weekly statistics. Callers parse the PREDICTED figure out of
	// it, with their own fallback on malformed responses.
	PredictIncome(ctx context.Context, stats models.PredictionStats) (string, error)
}
