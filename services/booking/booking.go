package booking

import (
	"context"
	"fmt"
	"time"

	"farmstead/config"
	stayRepo "farmstead/database/repository/stay"
	"farmstead/models"
	"farmstead/services/payment"
	"farmstead/services/stay"
	"farmstead/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultStaySessionService implements StaySessionService.
type DefaultStaySessionService struct {
	Repo     stayRepo.StayRepository
	Sessions SessionStore
	Payment  payment.PaymentHandler
}

// InitiateSession checks availability, prices the stay, and caches the result
// under a fresh session ID. Nothing is persisted until confirmation.
func (svc *DefaultStaySessionService) InitiateSession(req models.StayRequestInput) (*models.StaySession, error) {
	quote, available, err := svc.evaluate(req)
	if err != nil {
		return nil, err
	}

	session := &models.StaySession{
		SessionID: uuid.New().String(),
		Request:   req,
		Quote:     *quote,
		Available: available,
		CreatedAt: time.Now(),
	}
	if err := svc.Sessions.Set(session); err != nil {
		return nil, fmt.Errorf("failed to cache stay session: %w", err)
	}
	return session, nil
}

// UpdateSession replaces the cached request (new dates, activities, or
// package) and re-evaluates availability and pricing.
func (svc *DefaultStaySessionService) UpdateSession(sessionID string, req models.StayRequestInput) (*models.StaySession, error) {
	session, err := svc.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	quote, available, err := svc.evaluate(req)
	if err != nil {
		return nil, err
	}

	session.Request = req
	session.Quote = *quote
	session.Available = available
	if err := svc.Sessions.Set(session); err != nil {
		return nil, fmt.Errorf("failed to update stay session: %w", err)
	}
	return session, nil
}

// ConfirmBooking re-validates availability against current bookings, runs the
// simulated payment, and persists the booking. The session is cleared on
// success.
func (svc *DefaultStaySessionService) ConfirmBooking(sessionID, guestSessionID, paymentMethod string) (*models.StayBooking, error) {
	logger := utils.GetLogger()

	session, err := svc.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	req := session.Request

	room, bookings, checkIn, checkOut, err := svc.loadRoomState(req)
	if err != nil {
		return nil, err
	}

	// Another confirmation may have landed since the quote was issued.
	if !stay.IsAvailable(*room, bookings, checkIn, checkOut) {
		return nil, &AvailabilityError{RoomID: req.RoomID, Message: "no longer available for the selected dates"}
	}

	invoice, err := svc.Payment.ProcessPayment(context.Background(), models.PaymentRequest{
		SessionID: guestSessionID,
		Amount:    session.Quote.Total,
		Currency:  session.Quote.Currency,
		Method:    paymentMethod,
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	booking := &models.StayBooking{
		ID:            uuid.New().String(),
		RoomID:        req.RoomID,
		SessionID:     guestSessionID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Guests:        req.Guests,
		Nights:        session.Quote.Nights,
		Status:        models.BookingStatusConfirmed,
		Activities:    req.Activities,
		PackageID:     req.PackageID,
		TotalPrice:    session.Quote.Total,
		PaymentStatus: invoice.Status,
		PaymentRef:    invoice.PaymentID,
		CreatedAt:     time.Now(),
	}
	if err := svc.Repo.CreateBooking(booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if err := svc.Sessions.Delete(sessionID); err != nil {
		logger.Warn("failed to clear stay session after confirmation",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Info("Stay booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("roomID", booking.RoomID),
		zap.String("checkIn", booking.CheckIn),
		zap.String("checkOut", booking.CheckOut))
	return booking, nil
}

// CancelSession discards an in-progress booking session.
func (svc *DefaultStaySessionService) CancelSession(sessionID string) error {
	return svc.Sessions.Delete(sessionID)
}

// CancelBooking soft-deletes a booking by flipping its status.
func (svc *DefaultStaySessionService) CancelBooking(bookingID string) error {
	if _, err := svc.Repo.GetBookingByID(bookingID); err != nil {
		return err
	}
	return svc.Repo.SetBookingStatus(bookingID, models.BookingStatusCancelled)
}

// GetRoomAvailability returns the room's booked dates and, when a probe
// range is supplied, whether that range is bookable.
func (svc *DefaultStaySessionService) GetRoomAvailability(roomID, checkIn, checkOut string) (*models.RoomAvailability, error) {
	room, err := svc.Repo.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}
	bookings, err := svc.Repo.GetBookingsByRoom(roomID)
	if err != nil {
		return nil, err
	}

	result := &models.RoomAvailability{
		RoomID:      roomID,
		BookedDates: stay.BookedDates(roomID, bookings),
	}

	if checkIn != "" && checkOut != "" {
		in, err := time.Parse(utils.DateLayout, checkIn)
		if err != nil {
			return nil, &ValidationError{Field: "check_in", Message: "expected YYYY-MM-DD"}
		}
		out, err := time.Parse(utils.DateLayout, checkOut)
		if err != nil {
			return nil, &ValidationError{Field: "check_out", Message: "expected YYYY-MM-DD"}
		}
		available := stay.IsAvailable(*room, bookings, in, out)
		result.Available = &available
	}
	return result, nil
}

// ListBookingsBySession returns a guest session's bookings.
func (svc *DefaultStaySessionService) ListBookingsBySession(guestSessionID string) ([]models.StayBooking, error) {
	return svc.Repo.GetBookingsBySession(guestSessionID)
}

// evaluate validates the request, checks availability, and prices the stay.
func (svc *DefaultStaySessionService) evaluate(req models.StayRequestInput) (*models.StayQuote, bool, error) {
	room, bookings, checkIn, checkOut, err := svc.loadRoomState(req)
	if err != nil {
		return nil, false, err
	}
	if !checkIn.Before(checkOut) {
		return nil, false, &ValidationError{Field: "check_out", Message: "must be after check_in"}
	}
	if req.Guests <= 0 {
		return nil, false, &ValidationError{Field: "guests", Message: "must be positive"}
	}
	if req.Guests > room.Capacity {
		return nil, false, &AvailabilityError{RoomID: room.ID, Message: fmt.Sprintf("sleeps at most %d guests", room.Capacity)}
	}

	activities, err := svc.Repo.GetActivityMap()
	if err != nil {
		return nil, false, err
	}
	var pkg *models.SpecialPackage
	if req.PackageID != "" {
		pkg, err = svc.Repo.GetPackageByID(req.PackageID)
		if err != nil {
			return nil, false, err
		}
	}

	currency := config.AppConfig.Currency
	if currency == "" {
		currency = "USD"
	}

	nights := stay.Nights(checkIn, checkOut)
	activityTotal := stay.ActivityTotal(req.Activities, activities)
	quote := &models.StayQuote{
		RoomID:        room.ID,
		Nights:        nights,
		ActivityTotal: activityTotal,
		Currency:      currency,
	}
	if pkg != nil {
		quote.PackagePrice = pkg.Price
	} else {
		quote.RoomSubtotal = room.NightlyRate * float64(nights)
	}
	quote.Total = stay.BookingTotal(*room, nights, req.Activities, activities, pkg)

	available := stay.IsAvailable(*room, bookings, checkIn, checkOut)
	return quote, available, nil
}

func (svc *DefaultStaySessionService) loadRoomState(req models.StayRequestInput) (*models.Room, []models.StayBooking, time.Time, time.Time, error) {
	var zero time.Time
	room, err := svc.Repo.GetRoomByID(req.RoomID)
	if err != nil {
		return nil, nil, zero, zero, err
	}
	bookings, err := svc.Repo.GetBookingsByRoom(req.RoomID)
	if err != nil {
		return nil, nil, zero, zero, err
	}
	checkIn, err := time.Parse(utils.DateLayout, req.CheckIn)
	if err != nil {
		return nil, nil, zero, zero, &ValidationError{Field: "check_in", Message: "expected YYYY-MM-DD"}
	}
	checkOut, err := time.Parse(utils.DateLayout, req.CheckOut)
	if err != nil {
		return nil, nil, zero, zero, &ValidationError{Field: "check_out", Message: "expected YYYY-MM-DD"}
	}
	return room, bookings, checkIn, checkOut, nil
}
