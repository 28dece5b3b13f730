package productRepo

import (
	"farmstead/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProductRepo implements ProductRepository using MongoDB.
type MongoProductRepo struct {
	coll *mongo.Collection
}

// NewMongoProductRepo constructs a new instance of MongoProductRepo.
func NewMongoProductRepo() ProductRepository {
	db := database.MongoClient.Database("farmstead")
	return &MongoProductRepo{
		coll: db.Collection("products"),
	}
}
