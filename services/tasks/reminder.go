package tasks

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"farmstead/config"
	"farmstead/models"
	"farmstead/utils"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// Reminders fire at 08:00 UTC on the day before delivery.
const reminderHour = 8

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues delivery reminders on the reminder queue.
type AsynqReminderScheduler struct {
	once   sync.Once
	client *asynq.Client
}

func NewReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{}
}

func (s *AsynqReminderScheduler) getClient() *asynq.Client {
	s.once.Do(func() {
		s.client = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		})
	})
	return s.client
}

// ScheduleDeliveryReminder enqueues a reminder for the subscription's next
// delivery date. Dates already in the past are skipped.
func (s *AsynqReminderScheduler) ScheduleDeliveryReminder(sub models.Subscription) error {
	deliveryDate, err := time.Parse(utils.DateLayout, sub.NextDelivery)
	if err != nil {
		return fmt.Errorf("invalid next delivery date %q: %w", sub.NextDelivery, err)
	}

	dayBefore := deliveryDate.AddDate(0, 0, -1)
	fireAt := time.Date(dayBefore.Year(), dayBefore.Month(), dayBefore.Day(),
		reminderHour, 0, 0, 0, time.UTC)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		SubscriptionID: sub.ID,
		SessionID:      sub.SessionID,
		ProductID:      sub.ProductID,
		DeliveryDate:   sub.NextDelivery,
		Title:          "Delivery tomorrow",
		Body:           fmt.Sprintf("Your produce delivery arrives on %s.", sub.NextDelivery),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.getClient().Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
