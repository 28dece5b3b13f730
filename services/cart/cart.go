package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farmstead/config"
	couponRepo "farmstead/database/repository/coupon"
	orderRepo "farmstead/database/repository/order"
	productRepo "farmstead/database/repository/product"
	"farmstead/models"
	"farmstead/services/payment"
	"farmstead/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCartService implements CartService.
type DefaultCartService struct {
	Store    CartStore
	Products productRepo.ProductRepository
	Coupons  couponRepo.CouponRepository
	Orders   orderRepo.OrderRepository
	Payment  payment.PaymentHandler
	// Now overrides wall-clock time in tests; nil means time.Now.
	Now func() time.Time
}

func (svc *DefaultCartService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

func (svc *DefaultCartService) summaryConfig() SummaryConfig {
	cfg := SummaryConfig{
		FreeDeliveryThreshold: config.AppConfig.FreeDeliveryThreshold,
		DeliveryFee:           config.AppConfig.DeliveryFee,
		Currency:              config.AppConfig.Currency,
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	return cfg
}

// Get returns the session's cart.
func (svc *DefaultCartService) Get(sessionID string) (*models.Cart, error) {
	return svc.Store.Get(sessionID)
}

// AddItem puts a product in the cart, merging with an existing line.
func (svc *DefaultCartService) AddItem(sessionID, productID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	product, err := svc.Products.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("product lookup failed: %w", err)
	}

	c, err := svc.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
		})
	}
	return svc.save(c)
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (svc *DefaultCartService) UpdateQuantity(sessionID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, errors.New("quantity must not be negative")
	}
	if quantity == 0 {
		return svc.RemoveItem(sessionID, productID)
	}

	c, err := svc.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items[i].Quantity = quantity
			return svc.save(c)
		}
	}
	return nil, &NotFoundError{ProductID: productID}
}

// RemoveItem drops a line from the cart.
func (svc *DefaultCartService) RemoveItem(sessionID, productID string) (*models.Cart, error) {
	c, err := svc.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return svc.save(c)
		}
	}
	return nil, &NotFoundError{ProductID: productID}
}

// Clear discards the cart entirely.
func (svc *DefaultCartService) Clear(sessionID string) error {
	return svc.Store.Delete(sessionID)
}

// ApplyCoupon validates the code against the current subtotal and attaches
// it to the cart. Validation failures leave the cart untouched.
func (svc *DefaultCartService) ApplyCoupon(sessionID, code string) (*models.CartSummary, error) {
	coupon, err := svc.Coupons.GetByCode(code)
	if err != nil {
		return nil, fmt.Errorf("coupon lookup failed: %w", err)
	}

	c, err := svc.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	products, err := svc.productMap(c)
	if err != nil {
		return nil, err
	}

	subtotal := 0.0
	for _, item := range c.Items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	if _, err := CouponDiscount(*coupon, subtotal, svc.now()); err != nil {
		return nil, err
	}

	c.CouponCode = coupon.Code
	if _, err := svc.save(c); err != nil {
		return nil, err
	}
	summary := Summarize(*c, products, coupon, svc.summaryConfig(), svc.now())
	return &summary, nil
}

// RemoveCoupon detaches any coupon from the cart.
func (svc *DefaultCartService) RemoveCoupon(sessionID string) (*models.CartSummary, error) {
	c, err := svc.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	c.CouponCode = ""
	if _, err := svc.save(c); err != nil {
		return nil, err
	}
	return svc.Summary(sessionID)
}

// Summary computes the current cart breakdown.
func (svc *DefaultCartService) Summary(sessionID string) (*models.CartSummary, error) {
	c, err := svc.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	products, err := svc.productMap(c)
	if err != nil {
		return nil, err
	}
	coupon := svc.lookupCoupon(c.CouponCode)
	summary := Summarize(*c, products, coupon, svc.summaryConfig(), svc.now())
	return &summary, nil
}

// Checkout prices the cart, runs the simulated payment, records the order,
// decrements stock, and clears the cart.
func (svc *DefaultCartService) Checkout(sessionID, paymentMethod string) (*models.Order, error) {
	logger := utils.GetLogger()

	c, err := svc.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, errors.New("cart is empty")
	}
	products, err := svc.productMap(c)
	if err != nil {
		return nil, err
	}
	coupon := svc.lookupCoupon(c.CouponCode)
	summary := Summarize(*c, products, coupon, svc.summaryConfig(), svc.now())

	invoice, err := svc.Payment.ProcessPayment(context.Background(), models.PaymentRequest{
		SessionID: sessionID,
		Amount:    summary.Total,
		Currency:  summary.Currency,
		Method:    paymentMethod,
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	order := &models.Order{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		Items:       c.Items,
		Subtotal:    summary.Subtotal,
		Discount:    summary.Discount,
		DeliveryFee: summary.DeliveryFee,
		Total:       summary.Total,
		CouponCode:  summary.CouponCode,
		Invoice:     *invoice,
		Status:      "placed",
		CreatedAt:   svc.now(),
	}
	if err := svc.Orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	for _, item := range c.Items {
		if err := svc.Products.DecrementStock(item.ProductID, item.Quantity); err != nil {
			logger.Warn("failed to decrement stock after checkout",
				zap.String("productID", item.ProductID), zap.Error(err))
		}
	}

	if err := svc.Store.Delete(sessionID); err != nil {
		logger.Warn("failed to clear cart after checkout",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Info("Order placed",
		zap.String("orderID", order.ID),
		zap.String("sessionID", sessionID),
		zap.Float64("total", order.Total))
	return order, nil
}

func (svc *DefaultCartService) save(c *models.Cart) (*models.Cart, error) {
	c.UpdatedAt = svc.now()
	if err := svc.Store.Set(c); err != nil {
		return nil, fmt.Errorf("failed to store cart: %w", err)
	}
	return c, nil
}

func (svc *DefaultCartService) productMap(c *models.Cart) (map[string]models.Product, error) {
	products := make(map[string]models.Product, len(c.Items))
	for _, item := range c.Items {
		p, err := svc.Products.GetByID(item.ProductID)
		if err != nil {
			// A product pulled from the catalog after it was carted still
			// prices at its carted unit price; nutrition data is just absent.
			continue
		}
		products[p.ID] = *p
	}
	return products, nil
}

func (svc *DefaultCartService) lookupCoupon(code string) *models.Coupon {
	if code == "" {
		return nil
	}
	coupon, err := svc.Coupons.GetByCode(code)
	if err != nil {
		return nil
	}
	return coupon
}
