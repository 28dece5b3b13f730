package cart

import (
	"fmt"
	"testing"
	"time"

	"farmstead/models"
	"farmstead/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memCartStore struct {
	carts map[string]models.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]models.Cart)}
}

func (s *memCartStore) Get(sessionID string) (*models.Cart, error) {
	c, ok := s.carts[sessionID]
	if !ok {
		return &models.Cart{SessionID: sessionID}, nil
	}
	copied := c
	return &copied, nil
}

func (s *memCartStore) Set(cart *models.Cart) error {
	s.carts[cart.SessionID] = *cart
	return nil
}

func (s *memCartStore) Delete(sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

type stubProductRepo struct {
	stock map[string]int
}

func (r *stubProductRepo) Create(*models.Product) error { return nil }

func (r *stubProductRepo) GetByID(productID string) (*models.Product, error) {
	products := map[string]models.Product{
		"prod-tomato": {ID: "prod-tomato", Name: "Heirloom Tomatoes", Price: 5, UnitGrams: 500, CarbonGrams: 300, Stock: 50},
		"prod-eggs":   {ID: "prod-eggs", Name: "Pasture Eggs", Price: 6, UnitGrams: 600, CarbonGrams: 1200, Stock: 30},
	}
	p, ok := products[productID]
	if !ok {
		return nil, fmt.Errorf("product with id %s not found", productID)
	}
	return &p, nil
}

func (r *stubProductRepo) GetAll() ([]models.Product, error) { return nil, nil }

func (r *stubProductRepo) GetByCategory(string) ([]models.Product, error) { return nil, nil }

func (r *stubProductRepo) Search(string) ([]models.Product, error) { return nil, nil }

func (r *stubProductRepo) DecrementStock(productID string, units int) error {
	if r.stock == nil {
		r.stock = make(map[string]int)
	}
	r.stock[productID] += units
	return nil
}

type stubCouponRepo struct{}

func (stubCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	if code != "SPRING10" {
		return nil, fmt.Errorf("coupon %s not found", code)
	}
	return &models.Coupon{
		Code:      "SPRING10",
		Type:      models.CouponTypePercent,
		Value:     10,
		MinOrder:  20,
		ExpiresAt: time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}, nil
}

func (stubCouponRepo) Create(*models.Coupon) error { return nil }

type memOrderRepo struct {
	orders []models.Order
}

func (r *memOrderRepo) Create(order *models.Order) error {
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memOrderRepo) GetByID(string) (*models.Order, error) { return nil, nil }

func (r *memOrderRepo) GetBySession(string) ([]models.Order, error) { return nil, nil }

func newTestCartService() (*DefaultCartService, *memCartStore, *stubProductRepo, *memOrderRepo) {
	store := newMemCartStore()
	products := &stubProductRepo{}
	orders := &memOrderRepo{}
	handler := payment.NewPaymentHandler(zap.NewNop())
	handler.CardDelay = 0
	svc := &DefaultCartService{
		Store:    store,
		Products: products,
		Coupons:  stubCouponRepo{},
		Orders:   orders,
		Payment:  handler,
		Now:      func() time.Time { return time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC) },
	}
	return svc, store, products, orders
}

func TestAddItemMergesLines(t *testing.T) {
	svc, _, _, _ := newTestCartService()

	_, err := svc.AddItem("sess-1", "prod-tomato", 2)
	require.NoError(t, err)
	c, err := svc.AddItem("sess-1", "prod-tomato", 3)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, _, _, _ := newTestCartService()

	_, err := svc.AddItem("sess-1", "prod-tomato", 2)
	require.NoError(t, err)
	c, err := svc.UpdateQuantity("sess-1", "prod-tomato", 0)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestRemoveMissingItem(t *testing.T) {
	svc, _, _, _ := newTestCartService()

	_, err := svc.RemoveItem("sess-1", "prod-eggs")
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestApplyCouponBelowMinimum(t *testing.T) {
	svc, _, _, _ := newTestCartService()

	_, err := svc.AddItem("sess-1", "prod-tomato", 1) // subtotal 5
	require.NoError(t, err)

	_, err = svc.ApplyCoupon("sess-1", "SPRING10")
	var cerr *CouponError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CouponMinOrder, cerr.Code)

	// Cart stays untouched by the failed application.
	c, err := svc.Get("sess-1")
	require.NoError(t, err)
	assert.Empty(t, c.CouponCode)
}

func TestApplyCouponAndSummarize(t *testing.T) {
	svc, _, _, _ := newTestCartService()

	_, err := svc.AddItem("sess-1", "prod-tomato", 4)
	require.NoError(t, err)
	_, err = svc.AddItem("sess-1", "prod-eggs", 2)
	require.NoError(t, err)

	summary, err := svc.ApplyCoupon("sess-1", "SPRING10")
	require.NoError(t, err)
	assert.Equal(t, 32.0, summary.Subtotal)
	assert.Equal(t, 3.2, summary.Discount)
	assert.Equal(t, "SPRING10", summary.CouponCode)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	svc, store, products, orders := newTestCartService()

	_, err := svc.AddItem("sess-1", "prod-tomato", 4)
	require.NoError(t, err)
	_, err = svc.AddItem("sess-1", "prod-eggs", 2)
	require.NoError(t, err)

	order, err := svc.Checkout("sess-1", "card")
	require.NoError(t, err)
	assert.Equal(t, "placed", order.Status)
	assert.Equal(t, "paid", order.Invoice.Status)
	assert.Equal(t, 32.0, order.Subtotal)
	require.Len(t, orders.orders, 1)

	// Stock decremented per line, cart gone.
	assert.Equal(t, 4, products.stock["prod-tomato"])
	assert.Equal(t, 2, products.stock["prod-eggs"])
	assert.NotContains(t, store.carts, "sess-1")
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _, _ := newTestCartService()

	_, err := svc.Checkout("sess-1", "card")
	assert.Error(t, err)
}
