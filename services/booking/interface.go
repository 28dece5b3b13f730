package booking

import "farmstead/models"

// StaySessionService manages the stateful farm-stay booking flow: a session
// is opened with an availability check and quote, optionally revised, then
// confirmed into a persisted booking.
type StaySessionService interface {
	InitiateSession(req models.StayRequestInput) (*models.StaySession, error)
	UpdateSession(sessionID string, req models.StayRequestInput) (*models.StaySession, error)
	ConfirmBooking(sessionID, guestSessionID, paymentMethod string) (*models.StayBooking, error)
	CancelSession(sessionID string) error
	CancelBooking(bookingID string) error
	GetRoomAvailability(roomID, checkIn, checkOut string) (*models.RoomAvailability, error)
	ListBookingsBySession(guestSessionID string) ([]models.StayBooking, error)
}
