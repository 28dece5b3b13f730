package models

import "time"

// Coupon types.
const (
	CouponTypePercent = "percent"
	CouponTypeFixed   = "fixed"
)

// Coupon is a discount code. Percent coupons take Value as a percentage of
// the cart subtotal; fixed coupons subtract Value directly (floored at zero).
type Coupon struct {
	Code      string    `bson:"code" json:"code"`
	Type      string    `bson:"type" json:"type"` // percent | fixed
	Value     float64   `bson:"value" json:"value"`
	MinOrder  float64   `bson:"min_order" json:"min_order"` // Minimum subtotal to qualify
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	Active    bool      `bson:"active" json:"active"`
}
