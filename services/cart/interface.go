package cart

import "farmstead/models"

// CartService manages per-session shopping carts and checkout.
type CartService interface {
	Get(sessionID string) (*models.Cart, error)
	AddItem(sessionID, productID string, quantity int) (*models.Cart, error)
	UpdateQuantity(sessionID, productID string, quantity int) (*models.Cart, error)
	RemoveItem(sessionID, productID string) (*models.Cart, error)
	Clear(sessionID string) error
	ApplyCoupon(sessionID, code string) (*models.CartSummary, error)
	RemoveCoupon(sessionID string) (*models.CartSummary, error)
	Summary(sessionID string) (*models.CartSummary, error)
	Checkout(sessionID, paymentMethod string) (*models.Order, error)
}
