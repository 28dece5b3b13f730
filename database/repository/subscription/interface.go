// File: database/repository/subscription/interface.go
package subscriptionRepo

import "farmstead/models"

type SubscriptionRepository interface {
	Create(sub *models.Subscription) error
	GetByID(subID string) (*models.Subscription, error)
	GetBySession(sessionID string) ([]models.Subscription, error)
	Update(sub *models.Subscription) error
}
