package booking

import (
	"context"
	"fmt"

	bookingRepo "roomly/database/repository/booking"
	"roomly/models"
	"roomly/services/scheduling"
)

// CancelBooking deletes at most one booking matching the requester, room,
// date and normalized time text exactly. Zero matches report not-found as a
// normal outcome; cancelling twice is therefore harmless.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, req models.BookingRequest) (*CancelResult, error) {
	if _, err := s.Employees.Validate(ctx, req.EmployeeID); err != nil {
		return nil, err
	}
	switch {
	case req.Room == "":
		return nil, ValidationError{Field: "room", Message: "room is required"}
	case req.Date == "":
		return nil, ValidationError{Field: "date", Message: "date is required"}
	case req.Time == "":
		return nil, ValidationError{Field: "time", Message: "time is required"}
	}

	normalized, err := scheduling.NormalizeRangeText(req.Date, req.Time)
	if err != nil {
		return nil, ValidationError{Field: "time", Message: err.Error()}
	}

	deleted, err := s.Repo.DeleteOne(ctx, bookingRepo.CancelFilter{
		BookedBy: req.EmployeeID,
		Room:     req.Room,
		Date:     req.Date,
		Time:     normalized,
	})
	if err != nil {
		return nil, DependencyError{Op: "deleting booking", Err: err}
	}
	if deleted == 0 {
		return &CancelResult{
			Cancelled: false,
			Message:   "No matching booking found to cancel",
		}, nil
	}
	return &CancelResult{
		Cancelled: true,
		Message:   fmt.Sprintf("Booking of %s on %s at %s for %s has been cancelled", req.Room, req.Date, normalized, req.EmployeeID),
	}, nil
}
