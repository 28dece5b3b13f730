package stayRepo

import (
	"context"
	"fmt"
	"time"

	"farmstead/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetRoomByID retrieves a room document by ID.
func (repo *MongoStayRepo) GetRoomByID(roomID string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var room models.Room
	if err := repo.roomColl.FindOne(ctx, bson.M{"id": roomID}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("room with id %s not found", roomID)
		}
		return nil, fmt.Errorf("error fetching room %s: %w", roomID, err)
	}
	return &room, nil
}

// GetRooms retrieves all rooms.
func (repo *MongoStayRepo) GetRooms() ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.roomColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	for cursor.Next(ctx) {
		var r models.Room
		if err := cursor.Decode(&r); err != nil {
			return nil, fmt.Errorf("error decoding room: %w", err)
		}
		rooms = append(rooms, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return rooms, nil
}

// GetActivities retrieves the activity catalog.
func (repo *MongoStayRepo) GetActivities() ([]models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.activityColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	for cursor.Next(ctx) {
		var a models.Activity
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("error decoding activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return activities, nil
}

// GetActivityMap returns the activity catalog keyed by ID, for price lookups.
func (repo *MongoStayRepo) GetActivityMap() (map[string]models.Activity, error) {
	activities, err := repo.GetActivities()
	if err != nil {
		return nil, err
	}
	m := make(map[string]models.Activity, len(activities))
	for _, a := range activities {
		m[a.ID] = a
	}
	return m, nil
}

// GetPackages retrieves the special package catalog.
func (repo *MongoStayRepo) GetPackages() ([]models.SpecialPackage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.packageColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []models.SpecialPackage
	for cursor.Next(ctx) {
		var p models.SpecialPackage
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding package: %w", err)
		}
		packages = append(packages, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return packages, nil
}

// GetPackageByID retrieves a special package by ID.
func (repo *MongoStayRepo) GetPackageByID(packageID string) (*models.SpecialPackage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var pkg models.SpecialPackage
	if err := repo.packageColl.FindOne(ctx, bson.M{"id": packageID}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("package with id %s not found", packageID)
		}
		return nil, fmt.Errorf("error fetching package %s: %w", packageID, err)
	}
	return &pkg, nil
}

// GetBookingsByRoom retrieves all bookings for a room, cancelled included.
// Availability filtering happens in the stay engine, not here.
func (repo *MongoStayRepo) GetBookingsByRoom(roomID string) ([]models.StayBooking, error) {
	return repo.findBookings(bson.M{"room_id": roomID})
}

// GetBookingsBySession retrieves all bookings made by a guest session.
func (repo *MongoStayRepo) GetBookingsBySession(sessionID string) ([]models.StayBooking, error) {
	return repo.findBookings(bson.M{"session_id": sessionID})
}

func (repo *MongoStayRepo) findBookings(filter bson.M) ([]models.StayBooking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching stay bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.StayBooking
	for cursor.Next(ctx) {
		var b models.StayBooking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding stay booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}
