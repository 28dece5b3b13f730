// Package wishlist keeps a per-session set of saved product IDs in Redis.
package wishlist

import (
	"context"
	"time"

	"farmstead/utils"

	"github.com/go-redis/redis/v8"
)

// WishlistService manages a guest session's saved products.
type WishlistService interface {
	List(sessionID string) ([]string, error)
	Add(sessionID, productID string) error
	Toggle(sessionID, productID string) (added bool, err error)
	Remove(sessionID, productID string) error
}

// DefaultWishlistService implements WishlistService on a Redis set.
type DefaultWishlistService struct {
	Client *redis.Client
}

func key(sessionID string) string {
	return utils.WishlistCachePrefix + sessionID
}

// List returns the saved product IDs for a session.
func (svc *DefaultWishlistService) List(sessionID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return svc.Client.SMembers(ctx, key(sessionID)).Result()
}

// Add saves the product to the wishlist. Saving an already saved product is
// a no-op.
func (svc *DefaultWishlistService) Add(sessionID, productID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	k := key(sessionID)
	if err := svc.Client.SAdd(ctx, k, productID).Err(); err != nil {
		return err
	}
	return svc.Client.Expire(ctx, k, utils.CartCacheTTL).Err()
}

// Toggle adds the product to the wishlist, or removes it if already saved.
// Returns whether the product is saved after the call.
func (svc *DefaultWishlistService) Toggle(sessionID, productID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	k := key(sessionID)
	isMember, err := svc.Client.SIsMember(ctx, k, productID).Result()
	if err != nil {
		return false, err
	}
	if isMember {
		if err := svc.Client.SRem(ctx, k, productID).Err(); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := svc.Client.SAdd(ctx, k, productID).Err(); err != nil {
		return false, err
	}
	if err := svc.Client.Expire(ctx, k, utils.CartCacheTTL).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Remove drops the product from the wishlist.
func (svc *DefaultWishlistService) Remove(sessionID, productID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return svc.Client.SRem(ctx, key(sessionID), productID).Err()
}
