// Package notification delivers reminder messages to guests. The default
// implementation writes them to the structured log; a push or email provider
// can be swapped in behind the same interface.
package notification

import (
	"context"

	"farmstead/models"

	"go.uber.org/zap"
)

// NotificationService sends a reminder to the guest identified by its payload.
type NotificationService interface {
	SendReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultNotificationService logs reminders instead of delivering them.
type DefaultNotificationService struct {
	Logger *zap.Logger
}

func NewNotificationService(logger *zap.Logger) *DefaultNotificationService {
	return &DefaultNotificationService{Logger: logger}
}

func (svc *DefaultNotificationService) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	svc.Logger.Info("Delivery reminder",
		zap.String("subscriptionID", payload.SubscriptionID),
		zap.String("sessionID", payload.SessionID),
		zap.String("productID", payload.ProductID),
		zap.String("deliveryDate", payload.DeliveryDate),
		zap.String("title", payload.Title),
		zap.String("body", payload.Body))
	return nil
}
