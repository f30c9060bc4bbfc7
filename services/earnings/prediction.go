package earnings

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"saathi/models"
)

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// PredictIncome aggregates weekly statistics and asks the forecast
// model for next week's projection. A transport failure surfaces as an
// error; a reply without a parseable PREDICTED figure falls back to the
// average weekly earnings and never fails.
func (s *DefaultEarningsService) PredictIncome(ctx context.Context, workerUserID string) (*models.PredictionResponse, error) {
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
	now := s.now()
	oneWeekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	jobsThisWeek, jobsLastWeek := 0, 0
	maxWeeks := 1
	for _, b := range completed {
		if b.CompletedAt == nil {
			continue
		}
		if b.CompletedAt.After(oneWeekAgo) {
			jobsThisWeek++
		} else if b.CompletedAt.After(twoWeeksAgo) {
			jobsLastWeek++
		}
		weeks := int(now.Sub(*b.CompletedAt).Hours() / (24 * 7))
		if weeks < 1 {
			weeks = 1
		}
		if weeks > maxWeeks {
			maxWeeks = weeks
		}
	}

	averageWeekly := 0.0
	if len(completed) > 0 {
		averageWeekly = float64(len(completed)) * price / float64(maxWeeks)
	}

	stats := models.PredictionStats{
		WorkerName:            workerName,
		Skills:                worker.Skills,
		Rating:                worker.Rating,
		PricePerHour:          price,
		TotalJobsDone:         len(completed),
		JobsThisWeek:          jobsThisWeek,
		JobsLastWeek:          jobsLastWeek,
		CurrentWeekEarnings:   float64(jobsThisWeek) * price,
		LastWeekEarnings:      float64(jobsLastWeek) * price,
		AverageWeeklyEarnings: averageWeekly,
	}

	analysis, err := s.AI.PredictIncome(ctx, stats)
	if err != nil {
		return nil, err
	}

	return &models.PredictionResponse{
		WorkerName:            workerName,
		PredictedWeeklyIncome: ParsePredictedIncome(analysis, averageWeekly),
		Analysis:              analysis,
		CurrentWeekEarnings:   stats.CurrentWeekEarnings,
		LastWeekEarnings:      stats.LastWeekEarnings,
		AverageWeeklyEarnings: averageWeekly,
		TotalJobsDone:         len(completed),
		AverageRating:         worker.Rating,
	}, nil
}

// ParsePredictedIncome scans the model's reply for a "PREDICTED:" line
// and extracts its numeric value. Any malformation yields the fallback.
func ParsePredictedIncome(analysis string, fallback float64) float64 {
	for _, line := range strings.Split(analysis, "\n") {
		if !strings.HasPrefix(line, "PREDICTED:") {
			continue
		}
		amount := nonNumeric.ReplaceAllString(strings.TrimPrefix(line, "PREDICTED:"), "")
		parsed, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return fallback
		}
		return parsed
	}
	return fallback
}
