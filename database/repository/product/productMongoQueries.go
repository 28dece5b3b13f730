package productRepo

import (
	"context"
	"fmt"
	"time"

	"farmstead/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAll retrieves the full product catalog.
func (repo *MongoProductRepo) GetAll() ([]models.Product, error) {
	return repo.find(bson.M{})
}

// GetByCategory retrieves products in a given category.
func (repo *MongoProductRepo) GetByCategory(category string) ([]models.Product, error) {
	return repo.find(bson.M{"category": category})
}

// Search retrieves products whose name matches the query, case-insensitively.
func (repo *MongoProductRepo) Search(query string) ([]models.Product, error) {
	filter := bson.M{"name": bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}}
	return repo.find(filter)
}

func (repo *MongoProductRepo) find(filter bson.M) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding product: %w", err)
		}
		products = append(products, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return products, nil
}
