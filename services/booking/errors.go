package booking

import (
	"fmt"

	"roomly/models"
)

// ValidationError signals a user-correctable problem with a request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Conflict rejection reasons surfaced to callers.
const (
	ReasonOverCapacity    = "Room over capacity"
	ReasonAlreadyBooked   = "Room is already booked at this time"
	ReasonPurposeMismatch = "Purpose mismatch with existing booking"
)

// ConflictError is a business-rule rejection, not a system fault. Existing
// carries the clashing record's public fields when a competing booking caused
// the rejection.
type ConflictError struct {
	Reason   string
	Existing *models.PublicBooking
}

func (e ConflictError) Error() string {
	return e.Reason
}

// NotFoundError signals that the addressed booking or invite does not exist.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}

// UnauthorizedInviteError signals an invite attempt by someone other than
// the booking owner.
type UnauthorizedInviteError struct {
	BookingID  string
	EmployeeID string
}

func (e UnauthorizedInviteError) Error() string {
	return fmt.Sprintf("employee %s is not the owner of booking %s", e.EmployeeID, e.BookingID)
}

// DependencyError wraps a failure of an external collaborator (store,
// embedder, extractor). Not retried anywhere in the core.
type DependencyError struct {
	Op  string
	Err error
}

func (e DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e DependencyError) Unwrap() error {
	return e.Err
}
