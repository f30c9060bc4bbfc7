package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"saathi/models"
	"saathi/utils"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient wraps the generative model used for all three intake flows.
type GeminiClient struct {
	model *genai.GenerativeModel
}

// NewGeminiClient builds a client for the given model name.
func NewGeminiClient(apiKey, modelName string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel(modelName)}, nil
}

// GenerateContent runs a text-only prompt.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return collectText(resp)
}

// GenerateWithAudio runs a prompt against an inline audio payload.
func (g *GeminiClient) GenerateWithAudio(ctx context.Context, prompt string, audio []byte, mimeType string) (string, error) {
	resp, err := g.model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: audio},
		genai.Text(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return collectText(resp)
}

func collectText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// DefaultService implements Service on top of the Gemini client.
type DefaultService struct {
	Client  *GeminiClient
	Timeout time.Duration
}

// NewDefaultService wires the Gemini-backed intelligence service.
func NewDefaultService(client *GeminiClient, timeout time.Duration) *DefaultService {
	return &DefaultService{Client: client, Timeout: timeout}
}

func (s *DefaultService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// ExtractSkills sends the audio to Gemini and matches the reply against
// the skill vocabulary.
func (s *DefaultService) ExtractSkills(ctx context.Context, audio []byte, mimeType string) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.Client.GenerateWithAudio(ctx, buildSkillPrompt(), audio, mimeType)
	if err != nil {
		return nil, models.NewUnavailableError("skill extraction service failed, please try again")
	}
	return MatchSkills(raw), nil
}

// ExtractRegistration pulls a spoken registration out of the audio and
// decodes the model's JSON reply.
func (s *DefaultService) ExtractRegistration(ctx context.Context, audio []byte, mimeType string) (*models.VoiceRegistration, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.Client.GenerateWithAudio(ctx, buildRegistrationPrompt(), audio, mimeType)
	if err != nil {
		return nil, models.NewUnavailableError("voice registration service failed, please try again")
	}

	var reg models.VoiceRegistration
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &reg); err != nil {
		utils.GetLogger().Warn("voice registration: unparseable model reply")
		return nil, models.NewUnavailableError("could not understand the audio, please try again")
	}
	return &reg, nil
}

// PredictIncome runs the forecast prompt and returns the raw narrative.
func (s *DefaultService) PredictIncome(ctx context.Context, stats models.PredictionStats) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.Client.GenerateContent(ctx, buildPredictionPrompt(stats))
	if err != nil {
		return "", models.NewUnavailableError("income prediction service failed, please try again")
	}
	return raw, nil
}
