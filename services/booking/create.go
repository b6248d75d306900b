package booking

import (
	"context"
	"time"

	"roomly/models"
	"roomly/services/scheduling"
	"roomly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking runs the full admission pipeline: identity, capacity, time
// parsing, overlap detection, conflict resolution, then persistence with a
// freshly computed purpose embedding. Any rejection short-circuits with a
// typed error carrying the clashing record's public fields.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	emp, err := s.Employees.Validate(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if err := validateCreateFields(req); err != nil {
		return nil, err
	}

	if !scheduling.ValidateCapacity(req.Room, req.Attendees) {
		return nil, ConflictError{Reason: ReasonOverCapacity}
	}

	rng, err := scheduling.ParseTimeRange(req.Date, req.Time)
	if err != nil {
		return nil, ValidationError{Field: "time", Message: err.Error()}
	}

	invites, err := s.validateInvitees(ctx, req.EmployeeID, req.Invitees)
	if err != nil {
		return nil, err
	}

	lock := s.slotLock(req.Room, req.Date)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.Repo.FindByRoomDate(ctx, req.Room, req.Date)
	if err != nil {
		return nil, DependencyError{Op: "fetching existing bookings", Err: err}
	}
	overlaps := scheduling.FindOverlaps(rng, existing)

	decision, clash, err := s.Resolver.Resolve(ctx, req, overlaps, emp.IsAdmin)
	if err != nil {
		return nil, DependencyError{Op: "resolving purpose similarity", Err: err}
	}
	switch decision {
	case scheduling.DecisionRejectCapacity:
		return nil, ConflictError{Reason: ReasonOverCapacity}
	case scheduling.DecisionRejectPurposeMismatch:
		pub := clash.Public()
		return nil, ConflictError{Reason: ReasonPurposeMismatch, Existing: &pub}
	case scheduling.DecisionRejectConflict:
		pub := clash.Public()
		return nil, ConflictError{Reason: ReasonAlreadyBooked, Existing: &pub}
	}

	embedding, err := s.Embedder.Embed(ctx, req.Purpose)
	if err != nil {
		return nil, DependencyError{Op: "embedding purpose", Err: err}
	}

	record := &models.Booking{
		ID:        uuid.New().String(),
		Room:      req.Room,
		Date:      req.Date,
		Time:      rng.Format(),
		Attendees: req.Attendees,
		Purpose:   req.Purpose,
		Embedding: embedding,
		BookedBy:  emp.EmployeeID,
		Invites:   invites,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Insert(ctx, record); err != nil {
		return nil, DependencyError{Op: "persisting booking", Err: err}
	}

	s.scheduleReminder(ctx, record, rng)

	return record, nil
}

func validateCreateFields(req models.BookingRequest) error {
	switch {
	case req.Room == "":
		return ValidationError{Field: "room", Message: "room is required"}
	case req.Date == "":
		return ValidationError{Field: "date", Message: "date is required"}
	case req.Time == "":
		return ValidationError{Field: "time", Message: "time is required"}
	case req.Purpose == "":
		return ValidationError{Field: "purpose", Message: "purpose is required"}
	case req.Attendees <= 0:
		return ValidationError{Field: "attendees", Message: "attendees must be a positive number"}
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"}
	}
	return nil
}

// validateInvitees checks each invitee against the directory and builds the
// initial invite entries, skipping the requester and duplicates.
func (s *DefaultBookingService) validateInvitees(ctx context.Context, requesterID string, invitees []string) ([]models.Invite, error) {
	var invites []models.Invite
	seen := map[string]bool{requesterID: true}
	for _, id := range invitees {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, err := s.Employees.Validate(ctx, id); err != nil {
			return nil, err
		}
		invites = append(invites, models.Invite{EmployeeID: id, Status: models.InviteStatusSent})
	}
	return invites, nil
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, record *models.Booking, rng scheduling.TimeRange) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleReminder(ctx, record, rng.Start); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingID", record.ID), zap.Error(err))
	}
}
