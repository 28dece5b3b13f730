package cart

import "fmt"

// Coupon rejection codes.
const (
	CouponInactive = "inactive"
	CouponExpired  = "expired"
	CouponMinOrder = "minOrder"
)

// CouponError explains why a coupon could not be applied. An invalid coupon
// never yields a partial discount.
type CouponError struct {
	Code    string
	Message string
}

func (e *CouponError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NotFoundError signals a missing cart item.
type NotFoundError struct {
	ProductID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %s is not in the cart", e.ProductID)
}
