package subscription

import (
	"fmt"
	"time"

	productRepo "farmstead/database/repository/product"
	subscriptionRepo "farmstead/database/repository/subscription"
	"farmstead/models"
	"farmstead/services/delivery"
	"farmstead/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSubscriptionService implements SubscriptionService.
type DefaultSubscriptionService struct {
	Repo        subscriptionRepo.SubscriptionRepository
	ProductRepo productRepo.ProductRepository
	Reminders   ReminderScheduler
	// Now overrides wall-clock time in tests; nil means time.Now.
	Now func() time.Time
}

func (svc *DefaultSubscriptionService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

// Create validates the input, computes the initial next delivery date, and
// persists the subscription.
func (svc *DefaultSubscriptionService) Create(input CreateSubscriptionInput) (*models.Subscription, error) {
	if input.SessionID == "" {
		return nil, &ValidationError{Field: "session_id", Message: "required"}
	}
	if input.Quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Message: "must be positive"}
	}
	if !input.Schedule.HasActiveDay() {
		return nil, &ValidationError{Field: "schedule", Message: "at least one delivery day is required"}
	}
	startDate, err := time.Parse(utils.DateLayout, input.StartDate)
	if err != nil {
		return nil, &ValidationError{Field: "start_date", Message: "expected YYYY-MM-DD"}
	}
	if _, err := svc.ProductRepo.GetByID(input.ProductID); err != nil {
		return nil, fmt.Errorf("product lookup failed: %w", err)
	}

	now := svc.now()
	sub := &models.Subscription{
		ID:        uuid.New().String(),
		SessionID: input.SessionID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		StartDate: startDate.Format(utils.DateLayout),
		Schedule:  input.Schedule,
		Vacation:  input.Vacation,
		Status:    models.SubscriptionStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	svc.recompute(sub)

	if err := svc.Repo.Create(sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	svc.scheduleReminder(*sub)
	return sub, nil
}

// Get returns a subscription by ID.
func (svc *DefaultSubscriptionService) Get(subID string) (*models.Subscription, error) {
	return svc.Repo.GetByID(subID)
}

// ListBySession returns the subscriptions owned by a guest session.
func (svc *DefaultSubscriptionService) ListBySession(sessionID string) ([]models.Subscription, error) {
	return svc.Repo.GetBySession(sessionID)
}

// UpdateSchedule replaces the weekly pattern and recomputes the next delivery.
func (svc *DefaultSubscriptionService) UpdateSchedule(subID string, schedule models.DeliverySchedule) (*models.Subscription, error) {
	if !schedule.HasActiveDay() {
		return nil, &ValidationError{Field: "schedule", Message: "at least one delivery day is required"}
	}
	return svc.mutate(subID, func(sub *models.Subscription) error {
		sub.Schedule = schedule
		return nil
	})
}

// SetStartDate moves the subscription start and recomputes the next delivery.
func (svc *DefaultSubscriptionService) SetStartDate(subID, startDate string) (*models.Subscription, error) {
	parsed, err := time.Parse(utils.DateLayout, startDate)
	if err != nil {
		return nil, &ValidationError{Field: "start_date", Message: "expected YYYY-MM-DD"}
	}
	return svc.mutate(subID, func(sub *models.Subscription) error {
		sub.StartDate = parsed.Format(utils.DateLayout)
		return nil
	})
}

// AddSkipDate excludes a single delivery date and recomputes the next delivery.
func (svc *DefaultSubscriptionService) AddSkipDate(subID, date string) (*models.Subscription, error) {
	parsed, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return nil, &ValidationError{Field: "skip_date", Message: "expected YYYY-MM-DD"}
	}
	normalized := parsed.Format(utils.DateLayout)
	return svc.mutate(subID, func(sub *models.Subscription) error {
		for _, d := range sub.SkipDates {
			if d == normalized {
				return nil // already skipped
			}
		}
		sub.SkipDates = append(sub.SkipDates, normalized)
		return nil
	})
}

// SetVacationMode sets or clears the vacation range and recomputes the next
// delivery.
func (svc *DefaultSubscriptionService) SetVacationMode(subID string, vacation *models.VacationMode) (*models.Subscription, error) {
	if vacation != nil && vacation.Active {
		start, err := time.Parse(utils.DateLayout, vacation.StartDate)
		if err != nil {
			return nil, &ValidationError{Field: "vacation.start_date", Message: "expected YYYY-MM-DD"}
		}
		end, err := time.Parse(utils.DateLayout, vacation.EndDate)
		if err != nil {
			return nil, &ValidationError{Field: "vacation.end_date", Message: "expected YYYY-MM-DD"}
		}
		if end.Before(start) {
			return nil, &ValidationError{Field: "vacation", Message: "end date precedes start date"}
		}
	}
	return svc.mutate(subID, func(sub *models.Subscription) error {
		sub.Vacation = vacation
		return nil
	})
}

// Pause suspends the subscription. The next delivery date stays stored; the
// status alone tells callers not to act on it.
func (svc *DefaultSubscriptionService) Pause(subID string) (*models.Subscription, error) {
	return svc.setStatus(subID, models.SubscriptionStatusPaused)
}

// Resume reactivates a paused subscription.
func (svc *DefaultSubscriptionService) Resume(subID string) (*models.Subscription, error) {
	return svc.setStatus(subID, models.SubscriptionStatusActive)
}

// Cancel permanently ends the subscription.
func (svc *DefaultSubscriptionService) Cancel(subID string) (*models.Subscription, error) {
	sub, err := svc.Repo.GetByID(subID)
	if err != nil {
		return nil, err
	}
	sub.Status = models.SubscriptionStatusCancelled
	sub.UpdatedAt = svc.now()
	if err := svc.Repo.Update(sub); err != nil {
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}
	return sub, nil
}

// mutate loads the subscription, applies the change, recomputes the next
// delivery, and persists. Cancelled subscriptions reject all mutations.
func (svc *DefaultSubscriptionService) mutate(subID string, apply func(*models.Subscription) error) (*models.Subscription, error) {
	sub, err := svc.Repo.GetByID(subID)
	if err != nil {
		return nil, err
	}
	if sub.Status == models.SubscriptionStatusCancelled {
		return nil, &CancelledError{SubscriptionID: subID}
	}
	if err := apply(sub); err != nil {
		return nil, err
	}
	svc.recompute(sub)
	sub.UpdatedAt = svc.now()
	if err := svc.Repo.Update(sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	svc.scheduleReminder(*sub)
	return sub, nil
}

func (svc *DefaultSubscriptionService) setStatus(subID, status string) (*models.Subscription, error) {
	sub, err := svc.Repo.GetByID(subID)
	if err != nil {
		return nil, err
	}
	if sub.Status == models.SubscriptionStatusCancelled {
		return nil, &CancelledError{SubscriptionID: subID}
	}
	sub.Status = status
	sub.UpdatedAt = svc.now()
	if err := svc.Repo.Update(sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription status: %w", err)
	}
	return sub, nil
}

// Preview computes the next delivery for a schedule that has not been
// persisted, so the storefront can show the effect of edits live.
func (svc *DefaultSubscriptionService) Preview(input PreviewInput) (*PreviewResult, error) {
	now := svc.now()
	startDate := now
	if input.StartDate != "" {
		parsed, err := time.Parse(utils.DateLayout, input.StartDate)
		if err != nil {
			return nil, &ValidationError{Field: "start_date", Message: "expected YYYY-MM-DD"}
		}
		startDate = parsed
	}
	next, ok := delivery.NextDelivery(now, startDate, input.Schedule, input.SkipDates, input.Vacation)
	return &PreviewResult{NextDelivery: next.Format(utils.DateLayout), Valid: ok}, nil
}

// recompute refreshes NextDelivery from the engine and prunes stale skips.
func (svc *DefaultSubscriptionService) recompute(sub *models.Subscription) {
	now := svc.now()
	startDate, err := time.Parse(utils.DateLayout, sub.StartDate)
	if err != nil {
		// A stored start date never fails to parse; fall back to today.
		startDate = now
	}
	sub.SkipDates = delivery.PruneSkipDates(now, sub.SkipDates)
	next, ok := delivery.NextDelivery(now, startDate, sub.Schedule, sub.SkipDates, sub.Vacation)
	sub.NextDelivery = next.Format(utils.DateLayout)
	sub.NextDeliveryValid = ok
}

func (svc *DefaultSubscriptionService) scheduleReminder(sub models.Subscription) {
	if svc.Reminders == nil || !sub.NextDeliveryValid || sub.Status != models.SubscriptionStatusActive {
		return
	}
	if err := svc.Reminders.ScheduleDeliveryReminder(sub); err != nil {
		utils.GetLogger().Warn("failed to schedule delivery reminder",
			zap.String("subscriptionID", sub.ID), zap.Error(err))
	}
}
