package worker

import (
	workerRepo "saathi/database/repository/worker"
	"saathi/models"
	"saathi/utils"

	"go.uber.org/zap"
)

// Search filters available workers by optional skill and city. Every
// branch restricts to available workers; an empty result is returned
// as-is, not as an error.
func (s *DefaultWorkerService) Search(skill, city string) ([]models.WorkerSummary, error) {
	criteria := workerRepo.SearchCriteria{
		Skill:         utils.CanonicalSkill(skill),
		City:          city,
		AvailableOnly: true,
	}
	workers, err := s.Workers.Search(criteria)
	if err != nil {
		return nil, err
	}
	return s.summarize(workers)
}

// GetByID returns a single worker summary.
func (s *DefaultWorkerService) GetByID(workerID string) (*models.WorkerSummary, error) {
	profile, err := s.Workers.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("worker not found")
	}
	summaries, err := s.summarize([]models.WorkerProfile{*profile})
	if err != nil {
		return nil, err
	}
	return &summaries[0], nil
}

// ToggleAvailability flips the caller's availability flag. No
// validation and no effect on in-flight bookings.
func (s *DefaultWorkerService) ToggleAvailability(workerUserID string) (bool, error) {
	profile, err := s.Workers.GetByUserID(workerUserID)
	if err != nil {
		return false, err
	}
	if profile == nil {
		return false, models.NewNotFoundError("worker profile not found")
	}

	next := !profile.Available
	if err := s.Workers.SetAvailability(profile.ID, next); err != nil {
		return false, err
	}
	utils.GetLogger().Info("toggled availability",
		zap.String("workerId", profile.ID), zap.Bool("available", next))
	return next, nil
}

// summarize joins profiles with their user names into the exposed shape.
func (s *DefaultWorkerService) summarize(workers []models.WorkerProfile) ([]models.WorkerSummary, error) {
	summaries := make([]models.WorkerSummary, 0, len(workers))
	for _, w := range workers {
		name := ""
		user, err := s.Users.GetByID(w.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			name = user.Name
		}
		summaries = append(summaries, models.WorkerSummary{
			WorkerID:      w.ID,
			UserID:        w.UserID,
			Name:          name,
			Skills:        w.Skills,
			City:          w.City,
			Rating:        w.Rating,
			JobsCompleted: w.JobsCompleted,
			PricePerHour:  w.PricePerHour,
			Verified:      w.Verified,
		})
	}
	return summaries, nil
}
