package models

import "time"

// Subscription statuses.
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusPaused    = "paused"
	SubscriptionStatusCancelled = "cancelled"
)

// DeliverySchedule is the weekly recurring pattern of active delivery
// weekdays. All combinations are valid, including all-false.
type DeliverySchedule struct {
	Monday    bool `bson:"monday" json:"monday"`
	Tuesday   bool `bson:"tuesday" json:"tuesday"`
	Wednesday bool `bson:"wednesday" json:"wednesday"`
	Thursday  bool `bson:"thursday" json:"thursday"`
	Friday    bool `bson:"friday" json:"friday"`
	Saturday  bool `bson:"saturday" json:"saturday"`
	Sunday    bool `bson:"sunday" json:"sunday"`
}

// ActiveOn reports whether delivery is active on the given weekday.
func (s DeliverySchedule) ActiveOn(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	default:
		return s.Sunday
	}
}

// HasActiveDay reports whether at least one weekday is active.
func (s DeliverySchedule) HasActiveDay() bool {
	return s.Monday || s.Tuesday || s.Wednesday || s.Thursday || s.Friday || s.Saturday || s.Sunday
}

// VacationMode suspends scheduled deliveries inside [StartDate, EndDate],
// inclusive on both ends. The date fields are ignored when Active is false.
type VacationMode struct {
	Active    bool   `bson:"active" json:"active"`
	StartDate string `bson:"start_date" json:"start_date"` // "YYYY-MM-DD"
	EndDate   string `bson:"end_date" json:"end_date"`     // "YYYY-MM-DD"
}

// Subscription is a recurring produce delivery. Every mutation to schedule,
// start date, skip list, or vacation mode recomputes NextDelivery.
// Paused and cancelled subscriptions still carry a NextDelivery value; the
// scheduling engine is status-blind and callers decide whether to act on it.
type Subscription struct {
	ID           string           `bson:"id" json:"id"`
	SessionID    string           `bson:"session_id" json:"session_id"` // Owning guest session
	ProductID    string           `bson:"product_id" json:"product_id"`
	Quantity     int              `bson:"quantity" json:"quantity"`
	StartDate    string           `bson:"start_date" json:"start_date"` // "YYYY-MM-DD"
	Schedule     DeliverySchedule `bson:"schedule" json:"schedule"`
	SkipDates    []string         `bson:"skip_dates" json:"skip_dates"` // One-off excluded dates
	Vacation     *VacationMode    `bson:"vacation,omitempty" json:"vacation,omitempty"`
	NextDelivery string           `bson:"next_delivery" json:"next_delivery"` // Derived; "YYYY-MM-DD"
	// NextDeliveryValid is false when the 30-day lookahead was exhausted and
	// the stored date did not pass the schedule rules.
	NextDeliveryValid bool      `bson:"next_delivery_valid" json:"next_delivery_valid"`
	Status            string    `bson:"status" json:"status"` // active | paused | cancelled
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}
