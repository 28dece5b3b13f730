package cart

import (
	"fmt"
	"time"

	"farmstead/models"
)

// SummaryConfig carries the storefront pricing knobs.
type SummaryConfig struct {
	FreeDeliveryThreshold float64
	DeliveryFee           float64
	Currency              string
}

// CouponDiscount computes the discount a coupon grants on a subtotal.
// It returns a CouponError when the coupon does not apply; the discount is
// never partial.
func CouponDiscount(coupon models.Coupon, subtotal float64, now time.Time) (float64, error) {
	if !coupon.Active {
		return 0, &CouponError{Code: CouponInactive, Message: fmt.Sprintf("coupon %s is not active", coupon.Code)}
	}
	if !coupon.ExpiresAt.IsZero() && now.After(coupon.ExpiresAt) {
		return 0, &CouponError{Code: CouponExpired, Message: fmt.Sprintf("coupon %s expired", coupon.Code)}
	}
	if subtotal < coupon.MinOrder {
		return 0, &CouponError{
			Code:    CouponMinOrder,
			Message: fmt.Sprintf("coupon %s requires a minimum order of %.2f", coupon.Code, coupon.MinOrder),
		}
	}

	var discount float64
	switch coupon.Type {
	case models.CouponTypePercent:
		discount = subtotal * coupon.Value / 100
	case models.CouponTypeFixed:
		discount = coupon.Value
	default:
		return 0, &CouponError{Code: CouponInactive, Message: fmt.Sprintf("coupon %s has unknown type %q", coupon.Code, coupon.Type)}
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount, nil
}

// Summarize computes the server-side cart breakdown: subtotal, coupon
// discount, delivery fee (waived at the free-delivery threshold), aggregate
// nutrition, and carbon footprint. A coupon that fails validation at summary
// time contributes no discount.
func Summarize(c models.Cart, products map[string]models.Product, coupon *models.Coupon, cfg SummaryConfig, now time.Time) models.CartSummary {
	summary := models.CartSummary{Currency: cfg.Currency}

	for _, item := range c.Items {
		summary.Subtotal += item.UnitPrice * float64(item.Quantity)
		summary.ItemCount += item.Quantity

		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		grams := product.UnitGrams * float64(item.Quantity)
		summary.Nutrition = summary.Nutrition.Add(product.Nutrition.Scale(grams))
		summary.CarbonGrams += product.CarbonGrams * float64(item.Quantity)
	}

	if coupon != nil {
		if discount, err := CouponDiscount(*coupon, summary.Subtotal, now); err == nil {
			summary.Discount = discount
			summary.CouponCode = coupon.Code
		}
	}

	if summary.ItemCount > 0 {
		discounted := summary.Subtotal - summary.Discount
		if discounted < cfg.FreeDeliveryThreshold {
			summary.DeliveryFee = cfg.DeliveryFee
		}
	}

	summary.Total = summary.Subtotal - summary.Discount + summary.DeliveryFee
	if summary.Total < 0 {
		summary.Total = 0
	}
	return summary
}
