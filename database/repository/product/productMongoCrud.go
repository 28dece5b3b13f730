package productRepo

import (
	"context"
	"fmt"
	"time"

	"farmstead/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new product document.
func (repo *MongoProductRepo) Create(product *models.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}
	return nil
}

// GetByID retrieves a product document by ID.
func (repo *MongoProductRepo) GetByID(productID string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	filter := bson.M{"id": productID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&product); err != nil {
		return nil, fmt.Errorf("error fetching product with id %s: %w", productID, err)
	}
	return &product, nil
}

// DecrementStock reduces a product's stock by the given number of units.
func (repo *MongoProductRepo) DecrementStock(productID string, units int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": productID, "stock": bson.M{"$gte": units}}
	update := bson.M{"$inc": bson.M{"stock": -units}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error decrementing stock for product %s: %w", productID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %s has insufficient stock for %d units", productID, units)
	}
	return nil
}
