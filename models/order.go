package models

import "time"

// PaymentRequest is the input to the (simulated) payment handler.
type PaymentRequest struct {
	SessionID string  `json:"session_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Method    string  `json:"method"` // "card" or "cash"
	Reference string  `json:"reference,omitempty"`
}

// Invoice is the outcome of a payment attempt.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoice_id"`
	SessionID string    `bson:"session_id" json:"session_id"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Method    string    `bson:"method" json:"method"`
	PaymentID string    `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	Status    string    `bson:"status" json:"status"` // "pending", "paid", "failed"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Order is a checked-out cart.
type Order struct {
	ID          string     `bson:"id" json:"id"`
	SessionID   string     `bson:"session_id" json:"session_id"`
	Items       []CartItem `bson:"items" json:"items"`
	Subtotal    float64    `bson:"subtotal" json:"subtotal"`
	Discount    float64    `bson:"discount" json:"discount"`
	DeliveryFee float64    `bson:"delivery_fee" json:"delivery_fee"`
	Total       float64    `bson:"total" json:"total"`
	CouponCode  string     `bson:"coupon_code,omitempty" json:"coupon_code,omitempty"`
	Invoice     Invoice    `bson:"invoice" json:"invoice"`
	Status      string     `bson:"status" json:"status"` // "placed", "cancelled"
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
}
