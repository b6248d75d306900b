package handlers

import (
	"net/http"

	"roomly/models"
	"roomly/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking operations over HTTP.
type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// requesterID returns the authenticated employee ID set by the auth middleware.
func requesterID(c *gin.Context) string {
	id, _ := c.Get("employeeID")
	s, _ := id.(string)
	return s
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "reason": "invalid input", "details": err.Error()})
		return
	}
	if req.EmployeeID == "" {
		req.EmployeeID = requesterID(c)
	}

	created, err := h.Bookings.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "booking": created})
}

// CancelBookingHandler handles DELETE /api/bookings.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "reason": "invalid input", "details": err.Error()})
		return
	}
	if req.EmployeeID == "" {
		req.EmployeeID = requesterID(c)
	}

	result, err := h.Bookings.CancelBooking(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !result.Cancelled {
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": result.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": result.Message})
}

// ViewBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ViewBookingsHandler(c *gin.Context) {
	employeeID := requesterID(c)

	bookings, err := h.Bookings.ViewBookings(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"employee_id": employeeID,
		"bookings":    bookings,
	})
}

// CheckAvailabilityHandler handles GET /api/availability?date=...&time=...
func (h *BookingHandler) CheckAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	timeRange := c.Query("time")

	rooms, err := h.Bookings.CheckAvailability(c.Request.Context(), date, timeRange)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"available_rooms": rooms,
		"date":            date,
		"time":            timeRange,
	})
}

// InviteHandler handles POST /api/bookings/:id/invites.
func (h *BookingHandler) InviteHandler(c *gin.Context) {
	bookingID := c.Param("id")
	var input struct {
		Invitees []string `json:"invitees"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "reason": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Bookings.InviteToBooking(c.Request.Context(), bookingID, requesterID(c), input.Invitees)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "booking": updated})
}

// RespondInviteHandler handles PUT /api/bookings/:id/invites.
func (h *BookingHandler) RespondInviteHandler(c *gin.Context) {
	bookingID := c.Param("id")
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "reason": "invalid input", "details": err.Error()})
		return
	}

	matched, err := h.Bookings.RespondToInvite(c.Request.Context(), bookingID, requesterID(c), input.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": "no matching invite found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "invite updated"})
}
