package orderRepo

import (
	"context"
	"fmt"
	"time"

	"farmstead/database"
	"farmstead/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(orderID string) (*models.Order, error)
	GetBySession(sessionID string) ([]models.Order, error)
}

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a new instance of MongoOrderRepo.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database("farmstead")
	return &MongoOrderRepo{
		coll: db.Collection("orders"),
	}
}

// Create inserts a new order document.
func (repo *MongoOrderRepo) Create(order *models.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("error creating order: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its ID.
func (repo *MongoOrderRepo) GetByID(orderID string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.Order
	if err := repo.coll.FindOne(ctx, bson.M{"id": orderID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("order with id %s not found", orderID)
		}
		return nil, fmt.Errorf("error fetching order %s: %w", orderID, err)
	}
	return &order, nil
}

// GetBySession retrieves all orders placed by a guest session.
func (repo *MongoOrderRepo) GetBySession(sessionID string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, fmt.Errorf("error fetching orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var o models.Order
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("error decoding order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return orders, nil
}
