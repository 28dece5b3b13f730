package cart

import (
	"testing"
	"time"

	"farmstead/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

func percentCoupon() models.Coupon {
	return models.Coupon{
		Code:      "SPRING10",
		Type:      models.CouponTypePercent,
		Value:     10,
		MinOrder:  20,
		ExpiresAt: testNow.AddDate(0, 1, 0),
		Active:    true,
	}
}

func TestCouponDiscount(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*models.Coupon)
		subtotal float64
		want     float64
		wantCode string
	}{
		{"percent applies", nil, 50, 5, ""},
		{"fixed applies", func(c *models.Coupon) {
			c.Type = models.CouponTypeFixed
			c.Value = 8
		}, 50, 8, ""},
		{"fixed capped at subtotal", func(c *models.Coupon) {
			c.Type = models.CouponTypeFixed
			c.Value = 80
			c.MinOrder = 0
		}, 15, 15, ""},
		{"below minimum order", nil, 19.99, 0, CouponMinOrder},
		{"expired", func(c *models.Coupon) {
			c.ExpiresAt = testNow.Add(-time.Hour)
		}, 50, 0, CouponExpired},
		{"inactive", func(c *models.Coupon) {
			c.Active = false
		}, 50, 0, CouponInactive},
		{"unknown type", func(c *models.Coupon) {
			c.Type = "bogo"
		}, 50, 0, CouponInactive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			coupon := percentCoupon()
			if tc.mutate != nil {
				tc.mutate(&coupon)
			}
			got, err := CouponDiscount(coupon, tc.subtotal, testNow)
			if tc.wantCode != "" {
				var cerr *CouponError
				require.ErrorAs(t, err, &cerr)
				assert.Equal(t, tc.wantCode, cerr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func testCart() models.Cart {
	return models.Cart{
		SessionID: "sess-1",
		Items: []models.CartItem{
			{ProductID: "prod-tomato", Name: "Heirloom Tomatoes", UnitPrice: 5, Quantity: 4},
			{ProductID: "prod-eggs", Name: "Pasture Eggs", UnitPrice: 6, Quantity: 2},
		},
	}
}

func testProducts() map[string]models.Product {
	return map[string]models.Product{
		"prod-tomato": {
			ID: "prod-tomato", UnitGrams: 500, CarbonGrams: 300,
			Nutrition: models.Nutrition{Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, Fiber: 1.2},
		},
		"prod-eggs": {
			ID: "prod-eggs", UnitGrams: 600, CarbonGrams: 1200,
			Nutrition: models.Nutrition{Calories: 143, Protein: 12.6, Carbs: 0.7, Fat: 9.5, Fiber: 0},
		},
	}
}

func testConfig() SummaryConfig {
	return SummaryConfig{FreeDeliveryThreshold: 50, DeliveryFee: 4.99, Currency: "USD"}
}

func TestSummarizeBasics(t *testing.T) {
	summary := Summarize(testCart(), testProducts(), nil, testConfig(), testNow)

	assert.Equal(t, 32.0, summary.Subtotal) // 5x4 + 6x2
	assert.Equal(t, 0.0, summary.Discount)
	assert.Equal(t, 4.99, summary.DeliveryFee) // under the threshold
	assert.Equal(t, 36.99, summary.Total)
	assert.Equal(t, 6, summary.ItemCount)
	// 4 units x 300g + 2 units x 1200g of CO2e.
	assert.Equal(t, 3600.0, summary.CarbonGrams)
	// Tomatoes: 4 x 500g = 2000g at 18 kcal/100g; eggs: 2 x 600g = 1200g at 143 kcal/100g.
	assert.InDelta(t, 20*18+12*143, summary.Nutrition.Calories, 0.001)
}

func TestSummarizeWithCoupon(t *testing.T) {
	coupon := percentCoupon()
	summary := Summarize(testCart(), testProducts(), &coupon, testConfig(), testNow)

	assert.Equal(t, 3.2, summary.Discount)
	assert.Equal(t, "SPRING10", summary.CouponCode)
	assert.InDelta(t, 32-3.2+4.99, summary.Total, 0.001)
}

func TestSummarizeInvalidCouponContributesNothing(t *testing.T) {
	coupon := percentCoupon()
	coupon.ExpiresAt = testNow.Add(-time.Hour)

	summary := Summarize(testCart(), testProducts(), &coupon, testConfig(), testNow)
	assert.Equal(t, 0.0, summary.Discount)
	assert.Empty(t, summary.CouponCode)
}

func TestSummarizeFreeDeliveryThreshold(t *testing.T) {
	c := testCart()
	c.Items = append(c.Items, models.CartItem{ProductID: "prod-honey", UnitPrice: 20, Quantity: 1})

	summary := Summarize(c, testProducts(), nil, testConfig(), testNow)
	assert.Equal(t, 52.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.DeliveryFee)
	assert.Equal(t, 52.0, summary.Total)
}

func TestSummarizeEmptyCart(t *testing.T) {
	summary := Summarize(models.Cart{SessionID: "sess-1"}, nil, nil, testConfig(), testNow)
	assert.Equal(t, 0.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.DeliveryFee) // no fee on an empty cart
	assert.Equal(t, 0.0, summary.Total)
}

func TestSummarizeDiscountCrossingThresholdReinstatesFee(t *testing.T) {
	// Subtotal 52 clears the threshold, but a 10% coupon drops the
	// discounted subtotal to 46.80, bringing the fee back.
	c := testCart()
	c.Items = append(c.Items, models.CartItem{ProductID: "prod-honey", UnitPrice: 20, Quantity: 1})
	coupon := percentCoupon()

	summary := Summarize(c, testProducts(), &coupon, testConfig(), testNow)
	assert.InDelta(t, 5.2, summary.Discount, 0.001)
	assert.Equal(t, 4.99, summary.DeliveryFee)
}
