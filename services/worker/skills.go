package worker

import (
	"context"
	"strings"

	"saathi/models"
	"saathi/services/intelligence"
	"saathi/utils"

	"go.uber.org/zap"
)

// ExtractSkills runs the audio through the extraction model and merges
// detected tags into the worker's existing set. Existing tags are never
// overwritten; duplicates are dropped case-insensitively. An empty
// detection is a graceful outcome.
func (s *DefaultWorkerService) ExtractSkills(ctx context.Context, workerUserID string, audio []byte, filename string) (*models.SkillExtractionResponse, error) {
	profile, err := s.Workers.GetByUserID(workerUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("worker profile not found")
	}

	mimeType := intelligence.DetectAudioMimeType(filename)
	detected, err := s.AI.ExtractSkills(ctx, audio, mimeType)
	if err != nil {
		return nil, err
	}

	if len(detected) == 0 {
		return &models.SkillExtractionResponse{
			DetectedSkills: []string{},
			Message:        "No recognizable skills found in audio. Please try again and mention your work clearly.",
		}, nil
	}

	merged := MergeSkills(profile.Skills, detected)
	if err := s.Workers.SetSkills(profile.ID, merged); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("merged extracted skills",
		zap.String("workerId", profile.ID), zap.Strings("detected", detected))

	return &models.SkillExtractionResponse{
		DetectedSkills: detected,
		Message:        "Skills detected and saved: " + strings.Join(detected, ", "),
	}, nil
}

// MergeSkills appends new tags to existing ones, deduplicating
// case-insensitively and preserving order.
func MergeSkills(existing, detected []string) []string {
	merged := make([]string, 0, len(existing)+len(detected))
	seen := make(map[string]bool, len(existing)+len(detected))
	for _, tag := range existing {
		key := strings.ToUpper(strings.TrimSpace(tag))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, tag)
	}
	for _, tag := range detected {
		key := strings.ToUpper(strings.TrimSpace(tag))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, utils.CanonicalSkill(tag))
	}
	return merged
}
