package couponRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"farmstead/database"
	"farmstead/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CouponRepository interface {
	GetByCode(code string) (*models.Coupon, error)
	Create(coupon *models.Coupon) error
}

// MongoCouponRepo implements CouponRepository using MongoDB.
type MongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo constructs a new instance of MongoCouponRepo.
func NewMongoCouponRepo() CouponRepository {
	db := database.MongoClient.Database("farmstead")
	return &MongoCouponRepo{
		coll: db.Collection("coupons"),
	}
}

// GetByCode retrieves a coupon by its code. Codes are stored uppercase.
func (repo *MongoCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var coupon models.Coupon
	filter := bson.M{"code": strings.ToUpper(code)}
	if err := repo.coll.FindOne(ctx, filter).Decode(&coupon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("coupon %s not found", code)
		}
		return nil, fmt.Errorf("error fetching coupon %s: %w", code, err)
	}
	return &coupon, nil
}

// Create inserts a new coupon document.
func (repo *MongoCouponRepo) Create(coupon *models.Coupon) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coupon.Code = strings.ToUpper(coupon.Code)
	_, err := repo.coll.InsertOne(ctx, coupon)
	if err != nil {
		return fmt.Errorf("error creating coupon: %w", err)
	}
	return nil
}
