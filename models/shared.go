package models

// ReminderPayload is the asynq task payload for a delivery reminder.
type ReminderPayload struct {
	SubscriptionID string `json:"subscriptionId"`
	SessionID      string `json:"sessionId"`
	ProductID      string `json:"productId"`
	DeliveryDate   string `json:"deliveryDate"` // "YYYY-MM-DD"
	Title          string `json:"title"`
	Body           string `json:"body"`
}
