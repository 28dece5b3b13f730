package handlers

import (
	"net/http"

	"farmstead/services/wishlist"
	"farmstead/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WishlistHandler serves the per-session saved-products endpoints.
type WishlistHandler struct {
	Service wishlist.WishlistService
}

func NewWishlistHandler(svc wishlist.WishlistService) *WishlistHandler {
	return &WishlistHandler{Service: svc}
}

// ListWishlist returns the session's saved product IDs.
func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	items, err := h.Service.List(sessionID)
	if err != nil {
		getLogger(c).Error("Failed to load wishlist", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load wishlist", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

// AddToWishlist saves a product; already-saved products are a no-op.
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	if err := h.Service.Add(sessionID, c.Param("productID")); err != nil {
		getLogger(c).Error("Failed to save to wishlist", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save to wishlist", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// ToggleWishlist flips a product in or out of the wishlist.
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	saved, err := h.Service.Toggle(sessionID, c.Param("productID"))
	if err != nil {
		getLogger(c).Error("Failed to toggle wishlist", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to toggle wishlist", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// RemoveFromWishlist drops a product from the wishlist.
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	if err := h.Service.Remove(sessionID, c.Param("productID")); err != nil {
		getLogger(c).Error("Failed to remove from wishlist", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to remove from wishlist", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
