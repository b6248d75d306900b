package booking

import (
	"context"

	"roomly/models"
	"roomly/services/scheduling"
)

// CheckAvailability returns the rooms with no booking overlapping the
// requested interval on the given date. Purely interval-based; the purpose
// matcher is not consulted. A fully booked building yields an empty list.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, date, timeRange string) ([]string, error) {
	if date == "" {
		return nil, ValidationError{Field: "date", Message: "date is required"}
	}
	if timeRange == "" {
		return nil, ValidationError{Field: "time", Message: "time is required"}
	}
	rng, err := scheduling.ParseTimeRange(date, timeRange)
	if err != nil {
		return nil, ValidationError{Field: "time", Message: err.Error()}
	}

	dayBookings, err := s.Repo.FindByDate(ctx, date)
	if err != nil {
		return nil, DependencyError{Op: "fetching bookings", Err: err}
	}

	byRoom := make(map[string][]models.Booking)
	for _, b := range dayBookings {
		byRoom[b.Room] = append(byRoom[b.Room], b)
	}

	available := make([]string, 0, len(scheduling.Rooms()))
	for _, room := range scheduling.Rooms() {
		if len(scheduling.FindOverlaps(rng, byRoom[room])) == 0 {
			available = append(available, room)
		}
	}
	return available, nil
}
