package booking

import (
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

func (f *fakeUserRepo) Create(u *models.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByPhone(phone string) (*models.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

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
func (f *fakeWorkerRepo) Search(criteria workerRepo.SearchCriteria) ([]models.WorkerProfile, error) {
	var out []models.WorkerProfile
	for _, w := range f.workers {
		if criteria.AvailableOnly && !w.Available {
			continue
		}
		if criteria.Skill != "" && !w.HasSkill(criteria.Skill) {
			continue
		}
		if criteria.City != "" && w.City != criteria.City {
			continue
		}
		out = append(out, *w)
	}
	return out, nil
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
	w := f.workers[id]
	w.VerificationStatus = status
	w.Verified = verified
	w.AadhaarLastFour = lastFour
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	workers  *fakeWorkerRepo
}

func (f *fakeBookingRepo) Create(b *models.Booking) error { f.bookings[b.ID] = b; return nil }
func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	return f.bookings[id], nil
}
func (f *fakeBookingRepo) HasActiveBooking(customerID string) (bool, error) {
	for _, b := range f.bookings {
		if b.CustomerID != customerID {
			continue
		}
		for _, status := range models.ActiveBookingStatuses() {
			if b.Status == status {
				return true, nil
			}
		}
	}
	return false, nil
}
func (f *fakeBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) ListByWorker(workerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.WorkerID == workerID {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) ListCompletedByWorker(workerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.WorkerID == workerID && b.Status == models.BookingCompleted {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	f.bookings[id].Status = status
	return nil
}
func (f *fakeBookingRepo) Complete(id, workerID string, completedAt time.Time) (bool, error) {
	b := f.bookings[id]
	if b == nil || b.Status == models.BookingCompleted {
		return false, nil
	}
	b.Status = models.BookingCompleted
	b.CompletedAt = &completedAt
	f.workers.workers[workerID].JobsCompleted++
	return true, nil
}

func newTestService() (*DefaultBookingService, *fakeUserRepo, *fakeWorkerRepo, *fakeBookingRepo) {
	users := &fakeUserRepo{users: map[string]*models.User{}}
	workers := &fakeWorkerRepo{workers: map[string]*models.WorkerProfile{}}
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{}, workers: workers}
	svc := &DefaultBookingService{Bookings: bookings, Workers: workers, Users: users}
	return svc, users, workers, bookings
}

func seedCustomerAndWorker(users *fakeUserRepo, workers *fakeWorkerRepo) {
	users.users["cust-1"] = &models.User{ID: "cust-1", Name: "Asha", Email: "asha@example.com", Role: models.RoleCustomer}
	users.users["wuser-1"] = &models.User{ID: "wuser-1", Name: "Ravi", Email: "ravi@example.com", Role: models.RoleWorker}
	workers.workers["worker-1"] = &models.WorkerProfile{
		ID:           "worker-1",
		UserID:       "wuser-1",
		Skills:       []string{"PLUMBER"},
		City:         "Pune",
		Available:    true,
		Rating:       5.0,
		PricePerHour: 300,
	}
}

func TestCreateBooking(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	resp, err := svc.Create("cust-1", models.CreateBookingRequest{
		WorkerID:    "worker-1",
		Skill:       "plumber",
		Description: "leaking tap",
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.BookingMatched), resp.Status)
	assert.Equal(t, "PLUMBER", resp.Skill)
	assert.Equal(t, "Asha", resp.CustomerName)
	assert.Equal(t, "Ravi", resp.WorkerName)
	assert.NotEmpty(t, resp.BookingID)
}

func TestCreateBookingRejectsSecondActiveBooking(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	_, err := svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	require.NoError(t, err)

	_, err = svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeConflict, models.CodeOf(err))
}

func TestCreateBookingAllowedAfterTerminalState(t *testing.T) {
	svc, users, workers, bookings := newTestService()
	seedCustomerAndWorker(users, workers)

	first, err := svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	require.NoError(t, err)
	require.NoError(t, bookings.UpdateStatus(first.BookingID, models.BookingCancelled))

	_, err = svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	assert.NoError(t, err)
}

func TestCreateBookingFailures(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		workerID   string
		available  bool
		wantCode   models.ErrorCode
	}{
		{name: "unknown customer", customerID: "ghost", workerID: "worker-1", available: true, wantCode: models.ErrCodeNotFound},
		{name: "unknown worker", customerID: "cust-1", workerID: "ghost", available: true, wantCode: models.ErrCodeNotFound},
		{name: "unavailable worker", customerID: "cust-1", workerID: "worker-1", available: false, wantCode: models.ErrCodeConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, workers, _ := newTestService()
			seedCustomerAndWorker(users, workers)
			workers.workers["worker-1"].Available = tt.available

			_, err := svc.Create(tt.customerID, models.CreateBookingRequest{WorkerID: tt.workerID, Skill: "PLUMBER"})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, models.CodeOf(err))
		})
	}
}

func TestAcceptBooking(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	created, err := svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	require.NoError(t, err)

	resp, err := svc.Accept(created.BookingID, "wuser-1")
	require.NoError(t, err)
	assert.Equal(t, string(models.BookingAccepted), resp.Status)
}

func TestAcceptRejectsForeignWorker(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	created, err := svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	require.NoError(t, err)

	_, err = svc.Accept(created.BookingID, "someone-else")
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeForbidden, models.CodeOf(err))
}

func TestCompleteBookingIncrementsJobCounterOnce(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	created, err := svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	require.NoError(t, err)

	resp, err := svc.Complete(created.BookingID, "wuser-1")
	require.NoError(t, err)
	assert.Equal(t, string(models.BookingCompleted), resp.Status)
	assert.NotNil(t, resp.CompletedAt)
	assert.Equal(t, 1, workers.workers["worker-1"].JobsCompleted)

	// A repeated completion must not credit the counter again.
	resp, err = svc.Complete(created.BookingID, "wuser-1")
	require.NoError(t, err)
	assert.Equal(t, 1, workers.workers["worker-1"].JobsCompleted)
}

func TestCancelBooking(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	created, err := svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	require.NoError(t, err)

	resp, err := svc.Cancel(created.BookingID, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, string(models.BookingCancelled), resp.Status)

	// Cancelling again is idempotent.
	resp, err = svc.Cancel(created.BookingID, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, string(models.BookingCancelled), resp.Status)
}

func TestCancelRejectsForeignCustomer(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	created, err := svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	require.NoError(t, err)

	_, err = svc.Cancel(created.BookingID, "someone-else")
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeForbidden, models.CodeOf(err))
}

func TestCancelRejectsCompletedBooking(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	created, err := svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	require.NoError(t, err)
	_, err = svc.Complete(created.BookingID, "wuser-1")
	require.NoError(t, err)

	_, err = svc.Cancel(created.BookingID, "cust-1")
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeConflict, models.CodeOf(err))
}

func TestEligibleWorkersRequiresSkill(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.EligibleWorkers("", "")
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeValidation, models.CodeOf(err))
}

func TestEligibleWorkersReportsNoMatches(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	_, err := svc.EligibleWorkers("electrician", "")
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeNotFound, models.CodeOf(err))
}

func TestEligibleWorkersMatchesCaseInsensitively(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	summaries, err := svc.EligibleWorkers("plumber", "")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "worker-1", summaries[0].WorkerID)
	assert.Equal(t, "Ravi", summaries[0].Name)
}

func TestWorkerJobsListsAssignments(t *testing.T) {
	svc, users, workers, _ := newTestService()
	seedCustomerAndWorker(users, workers)

	created, err := svc.Create("cust-1", models.CreateBookingRequest{WorkerID: "worker-1", Skill: "PLUMBER"})
	require.NoError(t, err)

	jobs, err := svc.WorkerJobs("wuser-1")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, created.BookingID, jobs[0].BookingID)

	mine, err := svc.MyBookings("cust-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
}
