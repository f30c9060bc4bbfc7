package earnings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	workerRepo "saathi/database/repository/worker"
	"saathi/models"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(u *models.User) error             { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) { return f.users[id], nil }
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByPhone(string) (*models.User, error) { return nil, nil }

type fakeWorkerRepo struct {
	workers map[string]*models.WorkerProfile
}

func (f *fakeWorkerRepo) Create(w *models.WorkerProfile) error { f.workers[w.ID] = w; return nil }
func (f *fakeWorkerRepo) GetByID(id string) (*models.WorkerProfile, error) {
	return f.workers[id], nil
}
func (f *fakeWorkerRepo) GetByUserID(userID string) (*models.WorkerProfile, error) {
	for _, w := range f.workers {
		if w.UserID == userID {
			return w, nil
		}
	}
	return nil, nil
}
func (f *fakeWorkerRepo) Search(workerRepo.SearchCriteria) ([]models.WorkerProfile, error) {
	return nil, nil
}
func (f *fakeWorkerRepo) SetAvailability(string, bool) error { return nil }
func (f *fakeWorkerRepo) SetSkills(string, []string) error   { return nil }
func (f *fakeWorkerRepo) SetRating(string, float64) error    { return nil }
func (f *fakeWorkerRepo) SetVerification(string, models.VerificationStatus, bool, string) error {
	return nil
}

type fakeBookingRepo struct {
	completed []models.Booking
}

func (f *fakeBookingRepo) Create(*models.Booking) error                    { return nil }
func (f *fakeBookingRepo) GetByID(string) (*models.Booking, error)         { return nil, nil }
func (f *fakeBookingRepo) HasActiveBooking(string) (bool, error)           { return false, nil }
func (f *fakeBookingRepo) ListByCustomer(string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) ListByWorker(string) ([]models.Booking, error)   { return nil, nil }
func (f *fakeBookingRepo) ListCompletedByWorker(string) ([]models.Booking, error) {
	return f.completed, nil
}
func (f *fakeBookingRepo) UpdateStatus(string, models.BookingStatus) error { return nil }
func (f *fakeBookingRepo) Complete(string, string, time.Time) (bool, error) {
	return false, nil
}

type stubAI struct {
	reply string
	err   error
}

func (s *stubAI) ExtractSkills(context.Context, []byte, string) ([]string, error) {
	return nil, nil
}
func (s *stubAI) ExtractRegistration(context.Context, []byte, string) (*models.VoiceRegistration, error) {
	return nil, nil
}
func (s *stubAI) PredictIncome(context.Context, models.PredictionStats) (string, error) {
	return s.reply, s.err
}

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func completedBooking(id string, daysAgo int) models.Booking {
	at := testNow.AddDate(0, 0, -daysAgo)
	return models.Booking{
		ID:          id,
		CustomerID:  "cust-1",
		WorkerID:    "worker-1",
		Skill:       "PLUMBER",
		Status:      models.BookingCompleted,
		CompletedAt: &at,
	}
}

func newTestService(completed []models.Booking, ai *stubAI) *DefaultEarningsService {
	users := &fakeUserRepo{users: map[string]*models.User{
		"wuser-1": {ID: "wuser-1", Name: "Ravi"},
		"cust-1":  {ID: "cust-1", Name: "Asha"},
	}}
	workers := &fakeWorkerRepo{workers: map[string]*models.WorkerProfile{
		"worker-1": {
			ID:           "worker-1",
			UserID:       "wuser-1",
			Skills:       []string{"PLUMBER"},
			Rating:       4.5,
			PricePerHour: 300,
		},
	}}
	return &DefaultEarningsService{
		Workers:  workers,
		Users:    users,
		Bookings: &fakeBookingRepo{completed: completed},
		AI:       ai,
		Now:      func() time.Time { return testNow },
	}
}

func TestSummary(t *testing.T) {
	completed := []models.Booking{
		completedBooking("b-1", 1),
		completedBooking("b-2", 3),
		completedBooking("b-3", 10),
		completedBooking("b-4", 20),
	}
	svc := newTestService(completed, nil)

	resp, err := svc.Summary("wuser-1")
	require.NoError(t, err)

	assert.Equal(t, "Ravi", resp.WorkerName)
	assert.Equal(t, 4, resp.TotalJobsDone)
	assert.Equal(t, 1200.0, resp.TotalEarnings)
	assert.Equal(t, 2, resp.JobsThisWeek)
	assert.Equal(t, 600.0, resp.EarningsThisWeek)
	assert.Equal(t, 4.5, resp.AverageRating)
	assert.Equal(t, 300.0, resp.PricePerHour)
	require.Len(t, resp.RecentJobs, 4)
	assert.Equal(t, "b-1", resp.RecentJobs[0].BookingID)
	assert.Equal(t, "Asha", resp.RecentJobs[0].CustomerName)
	assert.Equal(t, 300.0, resp.RecentJobs[0].Earned)
}

func TestSummaryEmptyHistory(t *testing.T) {
	svc := newTestService(nil, nil)

	resp, err := svc.Summary("wuser-1")
	require.NoError(t, err)
	assert.Zero(t, resp.TotalJobsDone)
	assert.Zero(t, resp.TotalEarnings)
	assert.Empty(t, resp.RecentJobs)
}

func TestSummaryUnknownWorker(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.Summary("ghost")
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeNotFound, models.CodeOf(err))
}

func TestRecentJobsLimitAndOrdering(t *testing.T) {
	completed := []models.Booking{
		completedBooking("b-1", 6),
		completedBooking("b-2", 5),
		completedBooking("b-3", 4),
		completedBooking("b-4", 3),
		completedBooking("b-5", 2),
		completedBooking("b-6", 1),
	}
	// A completed booking without a stamp sorts last.
	unstamped := completedBooking("b-7", 0)
	unstamped.CompletedAt = nil
	completed = append(completed, unstamped)

	svc := newTestService(completed, nil)
	resp, err := svc.Summary("wuser-1")
	require.NoError(t, err)

	require.Len(t, resp.RecentJobs, 5)
	assert.Equal(t, "b-6", resp.RecentJobs[0].BookingID)
	assert.Equal(t, "b-5", resp.RecentJobs[1].BookingID)
	assert.Equal(t, "b-2", resp.RecentJobs[4].BookingID)
	for _, job := range resp.RecentJobs {
		assert.NotEqual(t, "N/A", job.CompletedAt)
	}
}

func TestPredictIncomeParsesModelReply(t *testing.T) {
	completed := []models.Booking{
		completedBooking("b-1", 1),
		completedBooking("b-2", 2),
	}
	reply := "PREDICTED: 2500\nANALYSIS: Steady demand for plumbing work.\nTIPS: Keep availability on."
	svc := newTestService(completed, &stubAI{reply: reply})

	resp, err := svc.PredictIncome(context.Background(), "wuser-1")
	require.NoError(t, err)

	assert.Equal(t, 2500.0, resp.PredictedWeeklyIncome)
	assert.Equal(t, reply, resp.Analysis)
	assert.Equal(t, 600.0, resp.CurrentWeekEarnings)
	assert.Equal(t, 0.0, resp.LastWeekEarnings)
	// Both jobs fall inside one week, so the average covers one week.
	assert.Equal(t, 600.0, resp.AverageWeeklyEarnings)
	assert.Equal(t, 2, resp.TotalJobsDone)
}

func TestPredictIncomeFallsBackOnMalformedReply(t *testing.T) {
	completed := []models.Booking{
		completedBooking("b-1", 1),
		completedBooking("b-2", 2),
	}
	svc := newTestService(completed, &stubAI{reply: "The worker should earn more next week."})

	resp, err := svc.PredictIncome(context.Background(), "wuser-1")
	require.NoError(t, err)
	assert.Equal(t, resp.AverageWeeklyEarnings, resp.PredictedWeeklyIncome)
}

func TestPredictIncomePropagatesModelFailure(t *testing.T) {
	svc := newTestService(nil, &stubAI{err: errors.New("upstream timeout")})

	_, err := svc.PredictIncome(context.Background(), "wuser-1")
	require.Error(t, err)
}

func TestParsePredictedIncome(t *testing.T) {
	tests := []struct {
		name     string
		analysis string
		fallback float64
		want     float64
	}{
		{
			name:     "plain figure",
			analysis: "PREDICTED: 2500\nANALYSIS: fine",
			fallback: 100,
			want:     2500,
		},
		{
			name:     "currency and separators stripped",
			analysis: "PREDICTED: ₹3,200 per week",
			fallback: 100,
			want:     3200,
		},
		{
			name:     "missing line",
			analysis: "ANALYSIS: no projection given",
			fallback: 450,
			want:     450,
		},
		{
			name:     "non numeric value",
			analysis: "PREDICTED: unknown",
			fallback: 450,
			want:     450,
		},
		{
			name:     "empty reply",
			analysis: "",
			fallback: 0,
			want:     0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePredictedIncome(tt.analysis, tt.fallback))
		})
	}
}
