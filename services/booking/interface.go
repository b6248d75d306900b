package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "roomly/database/repository/booking"
	"roomly/models"
	"roomly/services/employee"
	"roomly/services/scheduling"
	"roomly/services/semantic"
)

// CancelResult reports the outcome of a cancel operation. A zero match is a
// normal terminal outcome, not an error.
type CancelResult struct {
	Cancelled bool   `json:"cancelled"`
	Message   string `json:"message"`
}

// ReminderScheduler enqueues a reminder ahead of the given meeting start.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking *models.Booking, startAt time.Time) error
}

// BookingService is the operation surface of the booking engine.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, req models.BookingRequest) (*CancelResult, error)
	ViewBookings(ctx context.Context, employeeID string) ([]models.Booking, error)
	CheckAvailability(ctx context.Context, date, timeRange string) ([]string, error)
	InviteToBooking(ctx context.Context, bookingID, requesterID string, invitees []string) (*models.Booking, error)
	RespondToInvite(ctx context.Context, bookingID, employeeID, status string) (bool, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Employees employee.EmployeeService
	Resolver  *scheduling.Resolver
	Embedder  semantic.Embedder
	Reminders ReminderScheduler

	// Serializes the read-then-decide-then-write admission per room and
	// date; without it two concurrent creates can both pass the overlap
	// check before either writes.
	mu        sync.Mutex
	slotLocks map[string]*sync.Mutex
}

func (s *DefaultBookingService) slotLock(room, date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slotLocks == nil {
		s.slotLocks = make(map[string]*sync.Mutex)
	}
	key := room + "|" + date
	lock, ok := s.slotLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.slotLocks[key] = lock
	}
	return lock
}
