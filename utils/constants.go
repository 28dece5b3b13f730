// File: utils/constants.go
package utils

import "time"

// CartCachePrefix is the prefix used for Redis cart keys.
const CartCachePrefix = "cart:"

// WishlistCachePrefix is the prefix used for Redis wishlist keys.
const WishlistCachePrefix = "wishlist:"

// StaySessionPrefix is the prefix used for cached farm-stay booking sessions.
const StaySessionPrefix = "staysession:"

// CartCacheTTL is the time-to-live for cart and wishlist entries.
const CartCacheTTL = 14 * 24 * time.Hour

// StaySessionTTL is the time-to-live for a farm-stay booking session.
const StaySessionTTL = 10 * time.Minute

// SessionTokenTTL is the lifetime of a guest session token.
const SessionTokenTTL = 30 * 24 * time.Hour

// DateLayout is the calendar-date format used across schedules and bookings.
const DateLayout = "2006-01-02"
