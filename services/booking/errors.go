package booking

import "fmt"

// AvailabilityError signals that the requested room/date range cannot be booked.
type AvailabilityError struct {
	RoomID  string
	Message string
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("room %s: %s", e.RoomID, e.Message)
}

// SessionNotFoundError signals a missing or expired booking session.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("booking session %s not found or expired", e.SessionID)
}

// ValidationError signals malformed stay request input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
