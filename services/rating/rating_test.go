package rating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ratingRepo "saathi/database/repository/rating"
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
func (f *fakeWorkerRepo) SetAvailability(id string, available bool) error {
	f.workers[id].Available = available
	return nil
}
func (f *fakeWorkerRepo) SetSkills(id string, skills []string) error {
	f.workers[id].Skills = skills
	return nil
}
func (f *fakeWorkerRepo) SetRating(id string, rating float64) error {
	f.workers[id].Rating = rating
	return nil
}
func (f *fakeWorkerRepo) SetVerification(id string, status models.VerificationStatus, verified bool, lastFour string) error {
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (f *fakeBookingRepo) Create(b *models.Booking) error { f.bookings[b.ID] = b; return nil }
func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	return f.bookings[id], nil
}
func (f *fakeBookingRepo) HasActiveBooking(string) (bool, error)            { return false, nil }
func (f *fakeBookingRepo) ListByCustomer(string) ([]models.Booking, error)  { return nil, nil }
func (f *fakeBookingRepo) ListByWorker(string) ([]models.Booking, error)    { return nil, nil }
func (f *fakeBookingRepo) ListCompletedByWorker(string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	f.bookings[id].Status = status
	return nil
}
func (f *fakeBookingRepo) Complete(id, workerID string, completedAt time.Time) (bool, error) {
	return false, nil
}

type fakeRatingRepo struct {
	byBooking map[string]*models.Rating
}

func (f *fakeRatingRepo) Create(r *models.Rating) error {
	if _, exists := f.byBooking[r.BookingID]; exists {
		return ratingRepo.ErrAlreadyRated
	}
	f.byBooking[r.BookingID] = r
	return nil
}
func (f *fakeRatingRepo) GetByBookingID(bookingID string) (*models.Rating, error) {
	return f.byBooking[bookingID], nil
}

func newTestService() (*DefaultRatingService, *fakeWorkerRepo, *fakeBookingRepo) {
	users := &fakeUserRepo{users: map[string]*models.User{
		"cust-1":  {ID: "cust-1", Name: "Asha"},
		"wuser-1": {ID: "wuser-1", Name: "Ravi"},
	}}
	workers := &fakeWorkerRepo{workers: map[string]*models.WorkerProfile{
		"worker-1": {ID: "worker-1", UserID: "wuser-1", Rating: 5.0, JobsCompleted: 1},
	}}
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	svc := &DefaultRatingService{
		Ratings:  &fakeRatingRepo{byBooking: map[string]*models.Rating{}},
		Bookings: bookings,
		Workers:  workers,
		Users:    users,
	}
	return svc, workers, bookings
}

func addCompletedBooking(bookings *fakeBookingRepo, id string) {
	now := time.Now()
	bookings.bookings[id] = &models.Booking{
		ID:          id,
		CustomerID:  "cust-1",
		WorkerID:    "worker-1",
		Skill:       "PLUMBER",
		Status:      models.BookingCompleted,
		CompletedAt: &now,
	}
}

func TestSubmitFirstRatingOverridesDefault(t *testing.T) {
	svc, workers, bookings := newTestService()
	addCompletedBooking(bookings, "b-1")

	resp, err := svc.Submit("cust-1", models.RatingRequest{BookingID: "b-1", Score: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Score)
	assert.Equal(t, "Ravi", resp.WorkerName)
	assert.Equal(t, "Asha", resp.CustomerName)
	// The first rated job replaces the 5.0 signup default entirely.
	assert.Equal(t, 3.0, workers.workers["worker-1"].Rating)
}

func TestSubmitFoldsScoreIntoRunningAverage(t *testing.T) {
	svc, workers, bookings := newTestService()
	workers.workers["worker-1"].Rating = 3.0
	workers.workers["worker-1"].JobsCompleted = 2
	addCompletedBooking(bookings, "b-2")

	_, err := svc.Submit("cust-1", models.RatingRequest{BookingID: "b-2", Score: 5})
	require.NoError(t, err)

	// ((3.0 * 1) + 5) / 2 = 4.0
	assert.Equal(t, 4.0, workers.workers["worker-1"].Rating)
}

func TestSubmitRoundsToOneDecimal(t *testing.T) {
	svc, workers, bookings := newTestService()
	workers.workers["worker-1"].Rating = 4.0
	workers.workers["worker-1"].JobsCompleted = 3
	addCompletedBooking(bookings, "b-3")

	_, err := svc.Submit("cust-1", models.RatingRequest{BookingID: "b-3", Score: 5})
	require.NoError(t, err)

	// ((4.0 * 2) + 5) / 3 = 4.333... -> 4.3
	assert.Equal(t, 4.3, workers.workers["worker-1"].Rating)
}

func TestSubmitRejectsDuplicateRating(t *testing.T) {
	svc, _, bookings := newTestService()
	addCompletedBooking(bookings, "b-1")

	_, err := svc.Submit("cust-1", models.RatingRequest{BookingID: "b-1", Score: 4})
	require.NoError(t, err)

	_, err = svc.Submit("cust-1", models.RatingRequest{BookingID: "b-1", Score: 2})
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeConflict, models.CodeOf(err))
}

func TestSubmitRejectsForeignCustomer(t *testing.T) {
	svc, _, bookings := newTestService()
	addCompletedBooking(bookings, "b-1")

	_, err := svc.Submit("someone-else", models.RatingRequest{BookingID: "b-1", Score: 4})
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeForbidden, models.CodeOf(err))
}

func TestSubmitRejectsNonCompletedBooking(t *testing.T) {
	svc, _, bookings := newTestService()
	addCompletedBooking(bookings, "b-1")
	bookings.bookings["b-1"].Status = models.BookingAccepted

	_, err := svc.Submit("cust-1", models.RatingRequest{BookingID: "b-1", Score: 4})
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeConflict, models.CodeOf(err))
}

func TestSubmitValidatesScoreRange(t *testing.T) {
	svc, _, bookings := newTestService()
	addCompletedBooking(bookings, "b-1")

	for _, score := range []int{0, -1, 6} {
		_, err := svc.Submit("cust-1", models.RatingRequest{BookingID: "b-1", Score: score})
		require.Error(t, err, "score %d", score)
		assert.Equal(t, models.ErrCodeValidation, models.CodeOf(err))
	}
}

func TestSubmitUnknownBooking(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Submit("cust-1", models.RatingRequest{BookingID: "ghost", Score: 4})
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeNotFound, models.CodeOf(err))
}

func TestForBooking(t *testing.T) {
	svc, _, bookings := newTestService()
	addCompletedBooking(bookings, "b-1")

	_, err := svc.Submit("cust-1", models.RatingRequest{BookingID: "b-1", Score: 4, Comment: "good work"})
	require.NoError(t, err)

	resp, err := svc.ForBooking("b-1")
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Score)
	assert.Equal(t, "good work", resp.Comment)

	_, err = svc.ForBooking("unrated")
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeNotFound, models.CodeOf(err))
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4.333333, 4.3},
		{4.35, 4.4},
		{4.96, 5.0},
		{3.0, 3.0},
		{1.04, 1.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundRating(tt.in), "RoundRating(%v)", tt.in)
	}
}
