package subscriptionRepo

import (
	"context"
	"fmt"
	"time"

	"farmstead/database"
	"farmstead/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSubscriptionRepo implements SubscriptionRepository using MongoDB.
type MongoSubscriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepo constructs a new instance of MongoSubscriptionRepo.
func NewMongoSubscriptionRepo() SubscriptionRepository {
	db := database.MongoClient.Database("farmstead")
	return &MongoSubscriptionRepo{
		coll: db.Collection("subscriptions"),
	}
}

// Create inserts a new subscription document.
func (repo *MongoSubscriptionRepo) Create(sub *models.Subscription) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, sub)
	if err != nil {
		return fmt.Errorf("error creating subscription: %w", err)
	}
	return nil
}

// GetByID retrieves a subscription by its ID.
func (repo *MongoSubscriptionRepo) GetByID(subID string) (*models.Subscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var sub models.Subscription
	if err := repo.coll.FindOne(ctx, bson.M{"id": subID}).Decode(&sub); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("subscription with id %s not found", subID)
		}
		return nil, fmt.Errorf("error fetching subscription %s: %w", subID, err)
	}
	return &sub, nil
}

// GetBySession retrieves all subscriptions owned by a guest session.
func (repo *MongoSubscriptionRepo) GetBySession(sessionID string) ([]models.Subscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, fmt.Errorf("error fetching subscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var subs []models.Subscription
	for cursor.Next(ctx) {
		var s models.Subscription
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding subscription: %w", err)
		}
		subs = append(subs, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return subs, nil
}

// Update replaces the stored subscription document.
func (repo *MongoSubscriptionRepo) Update(sub *models.Subscription) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": sub.ID}
	update := bson.M{"$set": sub}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating subscription %s: %w", sub.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("subscription with id %s not found", sub.ID)
	}
	return nil
}
