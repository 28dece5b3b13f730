package handlers

import (
	"errors"
	"net/http"

	"farmstead/models"
	"farmstead/services/booking"
	"farmstead/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StayHandler serves the farm-stay booking flow: open a session with an
// availability check and quote, revise it, then confirm into a booking.
type StayHandler struct {
	Service booking.StaySessionService
}

func NewStayHandler(svc booking.StaySessionService) *StayHandler {
	return &StayHandler{Service: svc}
}

func stayError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	var aErr *booking.AvailabilityError
	var sErr *booking.SessionNotFoundError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid stay request", err.Error())
	case errors.As(err, &aErr):
		utils.JSONError(c, http.StatusConflict, "Room not available", err.Error())
	case errors.As(err, &sErr):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found", err.Error())
	default:
		getLogger(c).Error("Stay operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Stay operation failed", err.Error())
	}
}

// InitiateSession checks availability, prices the stay, and opens a
// short-lived booking session holding the quote.
func (h *StayHandler) InitiateSession(c *gin.Context) {
	var input models.StayRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Service.InitiateSession(input)
	if err != nil {
		stayError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession revises the stay request and reprices the quote.
func (h *StayHandler) UpdateSession(c *gin.Context) {
	var input models.StayRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Service.UpdateSession(c.Param("sessionID"), input)
	if err != nil {
		stayError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking re-validates availability, runs payment, and persists the
// booking.
func (h *StayHandler) ConfirmBooking(c *gin.Context) {
	guestSessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	var input struct {
		SessionID     string `json:"session_id" binding:"required"`
		PaymentMethod string `json:"payment_method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	bk, err := h.Service.ConfirmBooking(input.SessionID, guestSessionID, input.PaymentMethod)
	if err != nil {
		stayError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CancelSession abandons an open booking session.
func (h *StayHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Param("sessionID")); err != nil {
		stayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// CancelBooking cancels a confirmed booking, freeing its dates.
func (h *StayHandler) CancelBooking(c *gin.Context) {
	if err := h.Service.CancelBooking(c.Param("bookingID")); err != nil {
		stayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetRoomAvailability returns a room's booked dates and, when ?check_in=
// and ?check_out= are supplied, whether that range is free.
func (h *StayHandler) GetRoomAvailability(c *gin.Context) {
	availability, err := h.Service.GetRoomAvailability(c.Param("roomID"), c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		stayError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// ListBookings returns the guest session's bookings.
func (h *StayHandler) ListBookings(c *gin.Context) {
	guestSessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	bookings, err := h.Service.ListBookingsBySession(guestSessionID)
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}
