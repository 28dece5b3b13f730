package subscription

import "fmt"

// ValidationError signals malformed subscription input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// CancelledError signals a mutation attempt on a cancelled subscription.
type CancelledError struct {
	SubscriptionID string
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("subscription %s is cancelled and cannot be modified", e.SubscriptionID)
}
