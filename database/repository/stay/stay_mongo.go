package stayRepo

import (
	"farmstead/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStayRepo implements StayRepository using MongoDB.
type MongoStayRepo struct {
	roomColl     *mongo.Collection
	activityColl *mongo.Collection
	packageColl  *mongo.Collection
	bookingColl  *mongo.Collection
}

// NewMongoStayRepo constructs a new instance of MongoStayRepo.
func NewMongoStayRepo() StayRepository {
	db := database.MongoClient.Database("farmstead")
	return &MongoStayRepo{
		roomColl:     db.Collection("rooms"),
		activityColl: db.Collection("activities"),
		packageColl:  db.Collection("packages"),
		bookingColl:  db.Collection("stay_bookings"),
	}
}
