package models

import "time"

// Invite statuses.
const (
	InviteStatusSent     = "sent"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
)

// Invite is a status-tagged annotation on a booking recording an invitee's response.
type Invite struct {
	EmployeeID string `bson:"employee_id" json:"employee_id"`
	Status     string `bson:"status" json:"status"` // "sent", "accepted" or "declined"
}

// Booking represents a confirmed meeting-room reservation.
// Immutable after creation except for its invite sublist.
type Booking struct {
	ID        string    `bson:"id" json:"id"`                 // Unique booking identifier (UUID)
	Room      string    `bson:"room" json:"room"`             // Room name, drawn from the static room table
	Date      string    `bson:"date" json:"date"`             // Booking date in "YYYY-MM-DD" format
	Time      string    `bson:"time" json:"time"`             // Normalized time range text, e.g. "2:00 PM to 3:00 PM"
	Attendees int       `bson:"attendees" json:"attendees"`   // Number of people attending
	Purpose   string    `bson:"purpose" json:"purpose"`       // Free-text meeting purpose
	Embedding []float64 `bson:"embedding" json:"-"`           // Purpose embedding, cached at creation; never serialized outward
	BookedBy  string    `bson:"booked_by" json:"booked_by"`   // Employee ID of the requester
	Invites   []Invite  `bson:"invites,omitempty" json:"invites,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"` // Timestamp when booking was created
}

// PublicBooking is the subset of booking fields safe to echo back to callers,
// used when reporting the clashing record on a conflict.
type PublicBooking struct {
	Room    string `json:"room"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Purpose string `json:"purpose"`
}

// Public returns the caller-facing view of the booking.
func (b *Booking) Public() PublicBooking {
	return PublicBooking{
		Room:    b.Room,
		Date:    b.Date,
		Time:    b.Time,
		Purpose: b.Purpose,
	}
}
