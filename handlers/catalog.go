package handlers

import (
	"net/http"
	"strconv"

	"farmstead/services/catalog"
	"farmstead/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only produce and farm-stay catalogs.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListProducts returns products, optionally filtered by ?category= or ?q=.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	logger := getLogger(c)

	products, err := h.Service.ListProducts(c.Query("category"), c.Query("q"))
	if err != nil {
		logger.Error("Failed to list products", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list products", err.Error())
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by ID.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.Service.GetProduct(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Product not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListCategories returns the distinct product categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	logger := getLogger(c)

	categories, err := h.Service.Categories()
	if err != nil {
		logger.Error("Failed to list categories", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetProductNutrition returns a product's nutrition scaled to ?quantity=
// units (default 1).
func (h *CatalogHandler) GetProductNutrition(c *gin.Context) {
	quantity := 1
	if q := c.Query("quantity"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid quantity", err.Error())
			return
		}
		quantity = parsed
	}

	serving, err := h.Service.ProductNutrition(c.Param("id"), quantity)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to compute nutrition", err.Error())
		return
	}
	c.JSON(http.StatusOK, serving)
}

// ListRooms returns the farm-stay rooms.
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	logger := getLogger(c)

	rooms, err := h.Service.ListRooms()
	if err != nil {
		logger.Error("Failed to list rooms", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list rooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom returns a single room by ID.
func (h *CatalogHandler) GetRoom(c *gin.Context) {
	room, err := h.Service.GetRoom(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}

// ListActivities returns the bookable farm activities.
func (h *CatalogHandler) ListActivities(c *gin.Context) {
	logger := getLogger(c)

	activities, err := h.Service.ListActivities()
	if err != nil {
		logger.Error("Failed to list activities", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list activities", err.Error())
		return
	}
	c.JSON(http.StatusOK, activities)
}

// ListPackages returns the special stay packages.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	logger := getLogger(c)

	packages, err := h.Service.ListPackages()
	if err != nil {
		logger.Error("Failed to list packages", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list packages", err.Error())
		return
	}
	c.JSON(http.StatusOK, packages)
}
