package booking

import (
	workerRepo "saathi/database/repository/worker"
	"saathi/models"
	"saathi/utils"
)

// EligibleWorkers lists available workers carrying the requested skill,
// optionally narrowed to an exact city match, sorted by rating
// descending. No matches is surfaced as a user-facing failure rather
// than an empty success.
func (s *DefaultBookingService) EligibleWorkers(skill, city string) ([]models.WorkerSummary, error) {
	if skill == "" {
		return nil, models.NewValidationError("skill is required")
	}

	criteria := workerRepo.SearchCriteria{
		Skill:         utils.CanonicalSkill(skill),
		City:          city,
		AvailableOnly: true,
	}
	workers, err := s.Workers.Search(criteria)
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		return nil, models.NewNotFoundError("no workers available for skill: " + utils.CanonicalSkill(skill))
	}

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
