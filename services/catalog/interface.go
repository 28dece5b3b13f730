package catalog

import "farmstead/models"

// ProductServing is a product's nutrition resolved for a given quantity.
type ProductServing struct {
	ProductID   string           `json:"product_id"`
	Quantity    int              `json:"quantity"`
	Grams       float64          `json:"grams"`
	Nutrition   models.Nutrition `json:"nutrition"`
	CarbonGrams float64          `json:"carbon_grams"`
}

// CatalogService exposes the storefront catalogs: produce, rooms,
// activities, and special packages.
type CatalogService interface {
	ListProducts(category, query string) ([]models.Product, error)
	GetProduct(productID string) (*models.Product, error)
	Categories() ([]string, error)
	ProductNutrition(productID string, quantity int) (*ProductServing, error)
	ListRooms() ([]models.Room, error)
	GetRoom(roomID string) (*models.Room, error)
	ListActivities() ([]models.Activity, error)
	ListPackages() ([]models.SpecialPackage, error)
}
