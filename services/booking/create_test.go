package booking

import (
	"context"
	"errors"
	"testing"

	"roomly/models"
	"roomly/services/employee"
)

func TestCreateBooking(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	got, err := svc.CreateBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if got.ID == "" {
		t.Error("created booking has no ID")
	}
	if got.BookedBy != "EMP0001" {
		t.Errorf("BookedBy = %q, want EMP0001", got.BookedBy)
	}
	if got.Time != "2:00 PM to 3:00 PM" {
		t.Errorf("Time = %q, want normalized range text", got.Time)
	}
	if len(got.Embedding) == 0 {
		t.Error("created booking carries no purpose embedding")
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("repo holds %d bookings, want 1", len(repo.bookings))
	}
}

func TestCreateBookingNormalizesTimeText(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	req := validRequest()
	req.Time = "02:00 PM - 03:00 PM"
	got, err := svc.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if got.Time != "2:00 PM to 3:00 PM" {
		t.Errorf("Time = %q, want %q", got.Time, "2:00 PM to 3:00 PM")
	}
}

func TestCreateBookingPurposeMismatch(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	first := validRequest()
	first.Purpose = "Sprint Planning"
	if _, err := svc.CreateBooking(ctx, first); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	second := validRequest()
	second.EmployeeID = "EMP0002"
	second.Time = "2:30 PM to 3:30 PM"
	second.Purpose = "Budget Review"

	_, err := svc.CreateBooking(ctx, second)
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("CreateBooking error = %v, want ConflictError", err)
	}
	if conflict.Reason != ReasonPurposeMismatch {
		t.Errorf("Reason = %q, want %q", conflict.Reason, ReasonPurposeMismatch)
	}
	if conflict.Existing == nil {
		t.Fatal("ConflictError carries no existing booking")
	}
	if conflict.Existing.Room != "Data Dome" || conflict.Existing.Purpose != "Sprint Planning" {
		t.Errorf("Existing = %+v, want the clashing booking's public fields", conflict.Existing)
	}
}

func TestCreateBookingSimilarPurposeIsConflict(t *testing.T) {
	svc, _, _, matcher := newTestService(t)
	matcher.similar = map[[2]string]bool{{"Sprint Sync", "Sprint Planning"}: true}
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, validRequest()); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	second := validRequest()
	second.EmployeeID = "EMP0002"
	second.Purpose = "Sprint Sync"

	_, err := svc.CreateBooking(ctx, second)
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("CreateBooking error = %v, want ConflictError", err)
	}
	if conflict.Reason != ReasonAlreadyBooked {
		t.Errorf("Reason = %q, want %q", conflict.Reason, ReasonAlreadyBooked)
	}
}

func TestCreateBookingAdminNeverOverridesConflict(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, validRequest()); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	// The admin's purpose is dissimilar, so a regular employee would see a
	// purpose mismatch. The admin sees a plain conflict instead but is still
	// rejected.
	second := validRequest()
	second.EmployeeID = "ADMIN0001"
	second.Purpose = "Budget Review"

	_, err := svc.CreateBooking(ctx, second)
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("CreateBooking error = %v, want ConflictError", err)
	}
	if conflict.Reason != ReasonAlreadyBooked {
		t.Errorf("Reason = %q, want %q", conflict.Reason, ReasonAlreadyBooked)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("repo holds %d bookings after admin rejection, want 1", len(repo.bookings))
	}
}

func TestCreateBookingOverCapacity(t *testing.T) {
	svc, repo, _, matcher := newTestService(t)

	req := validRequest()
	req.Attendees = 5 // Data Dome holds 4

	_, err := svc.CreateBooking(context.Background(), req)
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("CreateBooking error = %v, want ConflictError", err)
	}
	if conflict.Reason != ReasonOverCapacity {
		t.Errorf("Reason = %q, want %q", conflict.Reason, ReasonOverCapacity)
	}
	if conflict.Existing != nil {
		t.Error("capacity rejection should not reference another booking")
	}
	if len(repo.bookings) != 0 {
		t.Error("over-capacity request was persisted")
	}
	if matcher.calls != 0 {
		t.Error("purpose matcher consulted for a capacity rejection")
	}
}

func TestCreateBookingTouchingEndpointsAdmitted(t *testing.T) {
	svc, _, _, matcher := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, validRequest()); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	second := validRequest()
	second.EmployeeID = "EMP0002"
	second.Time = "3:00 PM to 4:00 PM"
	second.Purpose = "Budget Review"

	if _, err := svc.CreateBooking(ctx, second); err != nil {
		t.Fatalf("back-to-back booking rejected: %v", err)
	}
	if matcher.calls != 0 {
		t.Error("purpose matcher consulted for non-overlapping bookings")
	}
}

func TestCreateBookingMalformedIDRejectedBeforeLookup(t *testing.T) {
	svc, _, directory, _ := newTestService(t)

	req := validRequest()
	req.EmployeeID = "EMP12"

	_, err := svc.CreateBooking(context.Background(), req)
	var invalid employee.InvalidIDError
	if !errors.As(err, &invalid) {
		t.Fatalf("CreateBooking error = %v, want InvalidIDError", err)
	}
	if directory.findCalls != 0 {
		t.Errorf("directory consulted %d times for a malformed ID, want 0", directory.findCalls)
	}
}

func TestCreateBookingUnknownEmployee(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	req := validRequest()
	req.EmployeeID = "EMP9999"

	_, err := svc.CreateBooking(context.Background(), req)
	var unauthorized employee.UnauthorizedError
	if !errors.As(err, &unauthorized) {
		t.Fatalf("CreateBooking error = %v, want UnauthorizedError", err)
	}
}

func TestCreateBookingFieldValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.BookingRequest)
		wantField string
	}{
		{name: "missing room", mutate: func(r *models.BookingRequest) { r.Room = "" }, wantField: "room"},
		{name: "missing date", mutate: func(r *models.BookingRequest) { r.Date = "" }, wantField: "date"},
		{name: "missing time", mutate: func(r *models.BookingRequest) { r.Time = "" }, wantField: "time"},
		{name: "missing purpose", mutate: func(r *models.BookingRequest) { r.Purpose = "" }, wantField: "purpose"},
		{name: "zero attendees", mutate: func(r *models.BookingRequest) { r.Attendees = 0 }, wantField: "attendees"},
		{name: "bad date format", mutate: func(r *models.BookingRequest) { r.Date = "10/01/2024" }, wantField: "date"},
		{name: "bad time range", mutate: func(r *models.BookingRequest) { r.Time = "14:00 to 15:00" }, wantField: "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestService(t)
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.CreateBooking(context.Background(), req)
			var validation ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("CreateBooking error = %v, want ValidationError", err)
			}
			if validation.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", validation.Field, tt.wantField)
			}
		})
	}
}

func TestCreateBookingWithInvitees(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	req := validRequest()
	req.Invitees = []string{"EMP0002", "EMP0002", "EMP0001", "EMP0003"}

	got, err := svc.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if len(got.Invites) != 2 {
		t.Fatalf("booking has %d invites, want 2 (requester and duplicate skipped)", len(got.Invites))
	}
	for _, inv := range got.Invites {
		if inv.Status != models.InviteStatusSent {
			t.Errorf("invite %s status = %q, want %q", inv.EmployeeID, inv.Status, models.InviteStatusSent)
		}
	}
}

func TestCreateBookingUnknownInvitee(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	req := validRequest()
	req.Invitees = []string{"EMP8888"}

	_, err := svc.CreateBooking(context.Background(), req)
	var unauthorized employee.UnauthorizedError
	if !errors.As(err, &unauthorized) {
		t.Fatalf("CreateBooking error = %v, want UnauthorizedError", err)
	}
	if len(repo.bookings) != 0 {
		t.Error("booking persisted despite unknown invitee")
	}
}
