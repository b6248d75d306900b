package booking

import (
	"context"

	"roomly/models"
)

// ViewBookings returns every booking where the employee is either the
// requester or listed as an invitee. Embeddings stay internal; the model
// suppresses them on serialization.
func (s *DefaultBookingService) ViewBookings(ctx context.Context, employeeID string) ([]models.Booking, error) {
	if _, err := s.Employees.Validate(ctx, employeeID); err != nil {
		return nil, err
	}
	bookings, err := s.Repo.FindByParticipant(ctx, employeeID)
	if err != nil {
		return nil, DependencyError{Op: "fetching bookings", Err: err}
	}
	return bookings, nil
}
