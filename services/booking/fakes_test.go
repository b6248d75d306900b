package booking

import (
	"context"
	"sync"
	"testing"

	"roomly/models"
	"roomly/services/employee"
	"roomly/services/scheduling"

	bookingRepo "roomly/database/repository/booking"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*models.Booking
	insertErr error
}

func (r *fakeBookingRepo) Insert(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	stored := *b
	r.bookings = append(r.bookings, &stored)
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == bookingID {
			found := *b
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) FindByRoomDate(_ context.Context, room, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Room == room && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindByDate(_ context.Context, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindByParticipant(_ context.Context, employeeID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BookedBy == employeeID {
			out = append(out, *b)
			continue
		}
		for _, inv := range b.Invites {
			if inv.EmployeeID == employeeID {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) DeleteOne(_ context.Context, filter bookingRepo.CancelFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.BookedBy == filter.BookedBy && b.Room == filter.Room &&
			b.Date == filter.Date && b.Time == filter.Time {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeBookingRepo) AppendInvite(_ context.Context, bookingID string, invite models.Invite) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID != bookingID {
			continue
		}
		for _, existing := range b.Invites {
			if existing.EmployeeID == invite.EmployeeID {
				return false, nil
			}
		}
		b.Invites = append(b.Invites, invite)
		return true, nil
	}
	return false, nil
}

func (r *fakeBookingRepo) UpdateInviteStatus(_ context.Context, bookingID, employeeID, status string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID != bookingID {
			continue
		}
		for i := range b.Invites {
			if b.Invites[i].EmployeeID == employeeID {
				b.Invites[i].Status = status
				return true, nil
			}
		}
	}
	return false, nil
}

// fakeEmployeeRepo is an in-memory directory that counts lookups.
type fakeEmployeeRepo struct {
	employees map[string]*models.Employee
	findCalls int
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, employeeID string) (*models.Employee, error) {
	r.findCalls++
	emp, ok := r.employees[employeeID]
	if !ok {
		return nil, nil
	}
	found := *emp
	return &found, nil
}

func (r *fakeEmployeeRepo) ListAll(_ context.Context) ([]models.Employee, error) {
	var out []models.Employee
	for _, emp := range r.employees {
		out = append(out, *emp)
	}
	return out, nil
}

// stubMatcher classifies purpose pairs from a fixed lookup.
type stubMatcher struct {
	similar map[[2]string]bool
	calls   int
}

func (m *stubMatcher) Similar(_ context.Context, a, b string) (bool, float64, error) {
	m.calls++
	if m.similar[[2]string{a, b}] || m.similar[[2]string{b, a}] {
		return true, 0.9, nil
	}
	return false, 0.1, nil
}

type stubEmbedder struct{}

func (stubEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	return []float64{0.1, 0.2, 0.3}, nil
}

func newTestService(t *testing.T) (*DefaultBookingService, *fakeBookingRepo, *fakeEmployeeRepo, *stubMatcher) {
	t.Helper()
	repo := &fakeBookingRepo{}
	directory := &fakeEmployeeRepo{employees: map[string]*models.Employee{
		"EMP0001":   {EmployeeID: "EMP0001", Name: "Asha Patel"},
		"EMP0002":   {EmployeeID: "EMP0002", Name: "Jordan Lee"},
		"EMP0003":   {EmployeeID: "EMP0003", Name: "Sam Okafor"},
		"ADMIN0001": {EmployeeID: "ADMIN0001", Name: "Site Admin", IsAdmin: true},
	}}
	matcher := &stubMatcher{}
	svc := &DefaultBookingService{
		Repo:      repo,
		Employees: &employee.DefaultEmployeeService{Repo: directory},
		Resolver:  &scheduling.Resolver{Matcher: matcher},
		Embedder:  stubEmbedder{},
	}
	return svc, repo, directory, matcher
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Room:       "Data Dome",
		Attendees:  3,
		Date:       "2024-01-10",
		Time:       "2:00 PM to 3:00 PM",
		Purpose:    "Sprint Planning",
		EmployeeID: "EMP0001",
	}
}
