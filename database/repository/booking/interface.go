package bookingRepo

import (
	"context"

	"roomly/models"
)

// CancelFilter identifies at most one booking for deletion. Time must already
// be in normalized range form so that equality matches stored records.
type CancelFilter struct {
	BookedBy string
	Room     string
	Date     string
	Time     string
}

// BookingRepository defines persistence operations for booking records.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindByRoomDate(ctx context.Context, room, date string) ([]models.Booking, error)
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByParticipant(ctx context.Context, employeeID string) ([]models.Booking, error)
	DeleteOne(ctx context.Context, filter CancelFilter) (int64, error)
	AppendInvite(ctx context.Context, bookingID string, invite models.Invite) (bool, error)
	UpdateInviteStatus(ctx context.Context, bookingID, employeeID, status string) (bool, error)
}
