package handlers

import (
	"errors"
	"net/http"

	"farmstead/services/cart"
	"farmstead/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler serves the per-session shopping cart endpoints.
type CartHandler struct {
	Service cart.CartService
}

func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Service: svc}
}

// GetCart returns the session's cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	crt, err := h.Service.Get(sessionID)
	if err != nil {
		getLogger(c).Error("Failed to load cart", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, crt)
}

// AddItem adds a product to the cart, merging with an existing line.
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	var input struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	crt, err := h.Service.AddItem(sessionID, input.ProductID, input.Quantity)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to add item", err.Error())
		return
	}
	c.JSON(http.StatusOK, crt)
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	crt, err := h.Service.UpdateQuantity(sessionID, c.Param("productID"), input.Quantity)
	if err != nil {
		var nfErr *cart.NotFoundError
		if errors.As(err, &nfErr) {
			utils.JSONError(c, http.StatusNotFound, "Item not in cart", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to update item", err.Error())
		return
	}
	c.JSON(http.StatusOK, crt)
}

// RemoveItem drops a line from the cart.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	crt, err := h.Service.RemoveItem(sessionID, c.Param("productID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to remove item", err.Error())
		return
	}
	c.JSON(http.StatusOK, crt)
}

// ClearCart empties the session's cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	if err := h.Service.Clear(sessionID); err != nil {
		getLogger(c).Error("Failed to clear cart", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// GetSummary returns the priced cart: subtotal, discount, delivery fee,
// nutrition, and carbon totals.
func (h *CartHandler) GetSummary(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	summary, err := h.Service.Summary(sessionID)
	if err != nil {
		getLogger(c).Error("Failed to price cart", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to price cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ApplyCoupon validates and attaches a coupon code to the cart.
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	summary, err := h.Service.ApplyCoupon(sessionID, input.Code)
	if err != nil {
		var cErr *cart.CouponError
		if errors.As(err, &cErr) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "Coupon rejected", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to apply coupon", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RemoveCoupon detaches the cart's coupon.
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	summary, err := h.Service.RemoveCoupon(sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to remove coupon", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Checkout prices the cart, runs payment, and persists an order.
func (h *CartHandler) Checkout(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	var input struct {
		PaymentMethod string `json:"payment_method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	order, err := h.Service.Checkout(sessionID, input.PaymentMethod)
	if err != nil {
		getLogger(c).Error("Checkout failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Checkout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, order)
}
