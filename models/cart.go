package models

import "time"

// CartItem is one product line in a cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the per-session shopping cart. It lives in the cart cache, keyed
// by guest session ID.
type Cart struct {
	SessionID  string     `json:"session_id"`
	Items      []CartItem `json:"items"`
	CouponCode string     `json:"coupon_code,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartSummary is the server-computed cart breakdown.
type CartSummary struct {
	Subtotal    float64   `json:"subtotal"`
	Discount    float64   `json:"discount"`     // coupon discount applied to subtotal
	DeliveryFee float64   `json:"delivery_fee"` // waived above the free-delivery threshold
	Total       float64   `json:"total"`
	CouponCode  string    `json:"coupon_code,omitempty"`
	Currency    string    `json:"currency"`
	Nutrition   Nutrition `json:"nutrition"`    // aggregate across all items
	CarbonGrams float64   `json:"carbon_grams"` // aggregate CO2e
	ItemCount   int       `json:"item_count"`
}
