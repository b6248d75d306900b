package scheduling

import (
	"context"

	"roomly/models"
)

// Decision is the outcome of conflict resolution for a booking request.
type Decision int

const (
	DecisionAdmit Decision = iota
	DecisionRejectCapacity
	DecisionRejectConflict
	DecisionRejectPurposeMismatch
)

func (d Decision) String() string {
	switch d {
	case DecisionAdmit:
		return "admit"
	case DecisionRejectCapacity:
		return "reject-capacity"
	case DecisionRejectConflict:
		return "reject-conflict"
	case DecisionRejectPurposeMismatch:
		return "reject-purpose-mismatch"
	default:
		return "unknown"
	}
}

// PurposeMatcher classifies two purpose strings as compatible or conflicting.
// The resolver treats it as a black box; vector internals stay behind it.
type PurposeMatcher interface {
	Similar(ctx context.Context, purposeA, purposeB string) (similar bool, score float64, err error)
}

// Resolver composes capacity, overlap and purpose-similarity checks into a
// single admission decision. Pure over its inputs; persistence is the caller's
// concern.
type Resolver struct {
	Matcher PurposeMatcher
}

// Resolve decides whether a booking request may proceed, given the overlapping
// bookings already found for its room and date. Returns the decision and, for
// conflict rejections, the clashing booking.
//
// Admin role never admits a conflicting booking; it only changes which
// rejection reason is surfaced.
func (r *Resolver) Resolve(ctx context.Context, req models.BookingRequest, overlaps []models.Booking, isAdmin bool) (Decision, *models.Booking, error) {
	if !ValidateCapacity(req.Room, req.Attendees) {
		return DecisionRejectCapacity, nil, nil
	}
	if len(overlaps) == 0 {
		return DecisionAdmit, nil, nil
	}

	clash := overlaps[0]
	similar, _, err := r.Matcher.Similar(ctx, req.Purpose, clash.Purpose)
	if err != nil {
		return DecisionRejectConflict, &clash, err
	}
	if !similar && !isAdmin {
		return DecisionRejectPurposeMismatch, &clash, nil
	}
	return DecisionRejectConflict, &clash, nil
}
