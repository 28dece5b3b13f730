package subscription

import (
	"farmstead/models"
)

// CreateSubscriptionInput is the caller-supplied portion of a new subscription.
type CreateSubscriptionInput struct {
	SessionID string                  `json:"session_id"`
	ProductID string                  `json:"product_id"`
	Quantity  int                     `json:"quantity"`
	StartDate string                  `json:"start_date"` // "YYYY-MM-DD"
	Schedule  models.DeliverySchedule `json:"schedule"`
	Vacation  *models.VacationMode    `json:"vacation,omitempty"`
}

// PreviewInput is a schedule to evaluate without persisting anything.
type PreviewInput struct {
	StartDate string                  `json:"start_date,omitempty"` // "YYYY-MM-DD"; empty means today
	Schedule  models.DeliverySchedule `json:"schedule"`
	SkipDates []string                `json:"skip_dates,omitempty"`
	Vacation  *models.VacationMode    `json:"vacation,omitempty"`
}

// PreviewResult is the computed next delivery for a previewed schedule.
type PreviewResult struct {
	NextDelivery string `json:"next_delivery"`
	Valid        bool   `json:"valid"`
}

// SubscriptionService manages recurring produce deliveries. Every mutation
// to schedule, start date, skip list, or vacation mode recomputes the next
// delivery date.
type SubscriptionService interface {
	Create(input CreateSubscriptionInput) (*models.Subscription, error)
	Get(subID string) (*models.Subscription, error)
	ListBySession(sessionID string) ([]models.Subscription, error)
	UpdateSchedule(subID string, schedule models.DeliverySchedule) (*models.Subscription, error)
	SetStartDate(subID, startDate string) (*models.Subscription, error)
	AddSkipDate(subID, date string) (*models.Subscription, error)
	SetVacationMode(subID string, vacation *models.VacationMode) (*models.Subscription, error)
	Pause(subID string) (*models.Subscription, error)
	Resume(subID string) (*models.Subscription, error)
	Cancel(subID string) (*models.Subscription, error)
	Preview(input PreviewInput) (*PreviewResult, error)
}

// ReminderScheduler enqueues a delivery reminder for a subscription.
// Implemented by the asynq task layer; a no-op is fine in tests.
type ReminderScheduler interface {
	ScheduleDeliveryReminder(sub models.Subscription) error
}
