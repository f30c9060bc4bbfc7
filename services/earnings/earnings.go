package earnings

import (
	"sort"

	"saathi/models"
)

const recentJobsLimit = 5

// completedAtFormat matches the display format of the earnings view.
const completedAtFormat = "02 Jan 2006, 03:04 PM"

// Summary aggregates the worker's completed bookings. Every completed
// job is billed at the worker's current hourly rate; "this week" is the
// trailing seven days.
func (s *DefaultEarningsService) Summary(workerUserID string) (*models.EarningsResponse, error) {
	worker, err := s.Workers.GetByUserID(workerUserID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, models.NewNotFoundError("worker not found")
	}

	user, err := s.Users.GetByID(worker.UserID)
	if err != nil {
		return nil, err
	}
	workerName := ""
	if user != nil {
		workerName = user.Name
	}

	completed, err := s.Bookings.ListCompletedByWorker(worker.ID)
	if err != nil {
		return nil, err
	}

	price := worker.PricePerHour
	totalEarnings := float64(len(completed)) * price

	oneWeekAgo := s.now().AddDate(0, 0, -7)
	jobsThisWeek := 0
	for _, b := range completed {
		if b.CompletedAt != nil && b.CompletedAt.After(oneWeekAgo) {
			jobsThisWeek++
		}
	}

	return &models.EarningsResponse{
		WorkerName:       workerName,
		TotalEarnings:    totalEarnings,
		TotalJobsDone:    len(completed),
		JobsThisWeek:     jobsThisWeek,
		EarningsThisWeek: float64(jobsThisWeek) * price,
		AverageRating:    worker.Rating,
		PricePerHour:     price,
		RecentJobs:       s.recentJobs(completed, price),
	}, nil
}

// recentJobs returns the five most recently completed jobs; bookings
// without a completion stamp sort last.
func (s *DefaultEarningsService) recentJobs(completed []models.Booking, price float64) []models.JobSummary {
	sorted := make([]models.Booking, len(completed))
	copy(sorted, completed)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].CompletedAt, sorted[j].CompletedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	if len(sorted) > recentJobsLimit {
		sorted = sorted[:recentJobsLimit]
	}

	jobs := make([]models.JobSummary, 0, len(sorted))
	for _, b := range sorted {
		completedAt := "N/A"
		if b.CompletedAt != nil {
			completedAt = b.CompletedAt.Format(completedAtFormat)
		}
		customerName := ""
		if customer, err := s.Users.GetByID(b.CustomerID); err == nil && customer != nil {
			customerName = customer.Name
		}
		jobs = append(jobs, models.JobSummary{
			BookingID:    b.ID,
			CustomerName: customerName,
			Skill:        b.Skill,
			CompletedAt:  completedAt,
			Earned:       price,
		})
	}
	return jobs
}
