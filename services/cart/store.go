package cart

import (
	"context"
	"encoding/json"
	"time"

	"farmstead/models"
	"farmstead/utils"

	"github.com/go-redis/redis/v8"
)

// CartStore persists per-session carts. Backed by Redis in production; the
// interface keeps the service testable and the substrate swappable.
type CartStore interface {
	Get(sessionID string) (*models.Cart, error)
	Set(cart *models.Cart) error
	Delete(sessionID string) error
}

// RedisCartStore implements CartStore on the cart cache client.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisCartStore constructs a RedisCartStore with the default TTL.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: utils.CartCacheTTL}
}

// Get returns the stored cart, or an empty cart when none exists yet.
func (s *RedisCartStore) Get(sessionID string) (*models.Cart, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Client.Get(ctx, utils.CartCachePrefix+sessionID).Result()
	if err == redis.Nil {
		return &models.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, err
	}
	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *RedisCartStore) Set(cart *models.Cart) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, utils.CartCachePrefix+cart.SessionID, data, s.TTL).Err()
}

func (s *RedisCartStore) Delete(sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return s.Client.Del(ctx, utils.CartCachePrefix+sessionID).Err()
}
