package booking

import (
	"context"
	"fmt"

	"roomly/models"
)

// InviteToBooking appends invite entries for the given employees to an
// existing booking. Entries are append-only and deduplicated; already listed
// invitees are left untouched. Returns the updated booking.
func (s *DefaultBookingService) InviteToBooking(ctx context.Context, bookingID, requesterID string, invitees []string) (*models.Booking, error) {
	if _, err := s.Employees.Validate(ctx, requesterID); err != nil {
		return nil, err
	}
	if len(invitees) == 0 {
		return nil, ValidationError{Field: "invitees", Message: "at least one invitee is required"}
	}

	record, err := s.Repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, DependencyError{Op: "fetching booking", Err: err}
	}
	if record == nil {
		return nil, NotFoundError{Message: fmt.Sprintf("booking %s not found", bookingID)}
	}
	if record.BookedBy != requesterID {
		return nil, UnauthorizedInviteError{BookingID: bookingID, EmployeeID: requesterID}
	}

	for _, id := range invitees {
		if id == requesterID {
			continue
		}
		if _, err := s.Employees.Validate(ctx, id); err != nil {
			return nil, err
		}
		invite := models.Invite{EmployeeID: id, Status: models.InviteStatusSent}
		if _, err := s.Repo.AppendInvite(ctx, bookingID, invite); err != nil {
			return nil, DependencyError{Op: "appending invite", Err: err}
		}
	}

	updated, err := s.Repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, DependencyError{Op: "fetching booking", Err: err}
	}
	return updated, nil
}

// RespondToInvite records an invitee's response, keyed by booking ID and
// invitee ID. Repeating an identical update is a no-op that still reports a
// match.
func (s *DefaultBookingService) RespondToInvite(ctx context.Context, bookingID, employeeID, status string) (bool, error) {
	if _, err := s.Employees.Validate(ctx, employeeID); err != nil {
		return false, err
	}
	if status != models.InviteStatusAccepted && status != models.InviteStatusDeclined {
		return false, ValidationError{Field: "status", Message: "status must be 'accepted' or 'declined'"}
	}

	matched, err := s.Repo.UpdateInviteStatus(ctx, bookingID, employeeID, status)
	if err != nil {
		return false, DependencyError{Op: "updating invite status", Err: err}
	}
	return matched, nil
}
