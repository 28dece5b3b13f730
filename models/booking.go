package models

import "time"

// Stay booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// ActivitySelection pairs an activity with a participant count for a stay.
type ActivitySelection struct {
	ActivityID   string `bson:"activity_id" json:"activity_id"`
	Participants int    `bson:"participants" json:"participants"`
}

// StayBooking represents a farm-stay booking record.
// Cancellation is a status flip; cancelled bookings stay in the collection
// but are excluded from all availability computations.
type StayBooking struct {
	ID            string              `bson:"id" json:"id"`                 // Unique booking identifier (UUID)
	RoomID        string              `bson:"room_id" json:"room_id"`       // Room being booked
	SessionID     string              `bson:"session_id" json:"session_id"` // Guest session that made the booking
	CheckIn       string              `bson:"check_in" json:"check_in"`     // "YYYY-MM-DD"
	CheckOut      string              `bson:"check_out" json:"check_out"`   // "YYYY-MM-DD", exclusive
	Guests        int                 `bson:"guests" json:"guests"`
	Nights        int                 `bson:"nights" json:"nights"`
	Status        string              `bson:"status" json:"status"` // pending | confirmed | cancelled
	Activities    []ActivitySelection `bson:"activities" json:"activities"`
	PackageID     string              `bson:"package_id,omitempty" json:"package_id,omitempty"`
	TotalPrice    float64             `bson:"total_price" json:"total_price"`
	PaymentStatus string              `bson:"payment_status" json:"payment_status"` // e.g., "pending", "paid"
	PaymentRef    string              `bson:"payment_ref,omitempty" json:"payment_ref,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
}

// StayRequestInput is the caller-supplied portion of a stay request.
type StayRequestInput struct {
	RoomID     string              `json:"room_id"`
	CheckIn    string              `json:"check_in"`
	CheckOut   string              `json:"check_out"`
	Guests     int                 `json:"guests"`
	Activities []ActivitySelection `json:"activities,omitempty"`
	PackageID  string              `json:"package_id,omitempty"`
}

// StayQuote is the priced breakdown for a stay request.
type StayQuote struct {
	RoomID        string  `json:"room_id"`
	Nights        int     `json:"nights"`
	RoomSubtotal  float64 `json:"room_subtotal"`  // nightly rate x nights; zero when a package applies
	ActivityTotal float64 `json:"activity_total"` // summed activity costs
	PackagePrice  float64 `json:"package_price"`  // fixed package price, if selected
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}

// StaySession is a cached in-progress booking flow: availability has been
// checked and a quote issued, but nothing is persisted until confirmation.
type StaySession struct {
	SessionID string           `json:"session_id"`
	Request   StayRequestInput `json:"request"`
	Quote     StayQuote        `json:"quote"`
	Available bool             `json:"available"`
	CreatedAt time.Time        `json:"created_at"`
}

// RoomAvailability is the availability view for a room: its already-booked
// calendar dates plus an optional probe result for a requested range.
type RoomAvailability struct {
	RoomID      string   `json:"room_id"`
	BookedDates []string `json:"booked_dates"`
	Available   *bool    `json:"available,omitempty"` // set when a probe range was supplied
}
