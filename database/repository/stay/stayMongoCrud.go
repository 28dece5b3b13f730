package stayRepo

import (
	"context"
	"fmt"
	"time"

	"farmstead/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateBooking inserts a new stay booking document.
func (repo *MongoStayRepo) CreateBooking(booking *models.StayBooking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.bookingColl.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("error creating stay booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a stay booking by its ID.
func (repo *MongoStayRepo) GetBookingByID(bookingID string) (*models.StayBooking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.StayBooking
	err := repo.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("stay booking with id %s not found", bookingID)
		}
		return nil, fmt.Errorf("error fetching stay booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// SetBookingStatus updates the status field of a booking. Cancellations go
// through here; booking documents are never deleted.
func (repo *MongoStayRepo) SetBookingStatus(bookingID, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID}
	update := bson.M{"$set": bson.M{"status": status}}
	res, err := repo.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating stay booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("stay booking with id %s not found", bookingID)
	}
	return nil
}
