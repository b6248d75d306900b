package assistant

import (
	"context"
	"errors"

	"roomly/models"
	"roomly/services/booking"
)

// ErrUnknownIntent is returned when an extracted intent matches no operation.
var ErrUnknownIntent = errors.New("unknown intent")

// RouteResult carries the output of whichever operation the router selected.
// Exactly one payload field is set, according to Intent.
type RouteResult struct {
	Intent         string                 `json:"intent"`
	Booking        *models.Booking        `json:"booking,omitempty"`
	Cancel         *booking.CancelResult  `json:"cancel,omitempty"`
	Bookings       []models.Booking       `json:"bookings,omitempty"`
	AvailableRooms []string               `json:"available_rooms,omitempty"`
}

// Router dispatches a structured booking request to one of the four booking
// operations. One-shot per request; no cross-request state.
type Router struct {
	Bookings booking.BookingService
}

// Route selects the operation by intent. An empty intent defaults to book;
// an unrecognized intent fails with ErrUnknownIntent.
func (r *Router) Route(ctx context.Context, req models.BookingRequest) (*RouteResult, error) {
	intent := req.Intent
	if intent == "" {
		intent = models.IntentBook
	}

	switch intent {
	case models.IntentBook:
		created, err := r.Bookings.CreateBooking(ctx, req)
		if err != nil {
			return nil, err
		}
		return &RouteResult{Intent: intent, Booking: created}, nil

	case models.IntentCancel:
		result, err := r.Bookings.CancelBooking(ctx, req)
		if err != nil {
			return nil, err
		}
		return &RouteResult{Intent: intent, Cancel: result}, nil

	case models.IntentView:
		bookings, err := r.Bookings.ViewBookings(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		return &RouteResult{Intent: intent, Bookings: bookings}, nil

	case models.IntentAvailability:
		rooms, err := r.Bookings.CheckAvailability(ctx, req.Date, req.Time)
		if err != nil {
			return nil, err
		}
		return &RouteResult{Intent: intent, AvailableRooms: rooms}, nil

	default:
		return nil, ErrUnknownIntent
	}
}
