package catalog

import (
	"errors"
	"sort"

	productRepo "farmstead/database/repository/product"
	stayRepo "farmstead/database/repository/stay"
	"farmstead/models"
)

// DefaultCatalogService implements CatalogService over the product and stay
// repositories.
type DefaultCatalogService struct {
	Products productRepo.ProductRepository
	Stay     stayRepo.StayRepository
}

// ListProducts returns catalog products, optionally filtered by category or
// name query. A query wins over a category filter when both are supplied.
func (svc *DefaultCatalogService) ListProducts(category, query string) ([]models.Product, error) {
	if query != "" {
		return svc.Products.Search(query)
	}
	if category != "" {
		return svc.Products.GetByCategory(category)
	}
	return svc.Products.GetAll()
}

// GetProduct returns a single product by ID.
func (svc *DefaultCatalogService) GetProduct(productID string) (*models.Product, error) {
	return svc.Products.GetByID(productID)
}

// Categories returns the distinct product categories, sorted.
func (svc *DefaultCatalogService) Categories() ([]string, error) {
	products, err := svc.Products.GetAll()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, p := range products {
		if p.Category != "" {
			seen[p.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

// ProductNutrition resolves a product's per-100g facts for a quantity of
// units.
func (svc *DefaultCatalogService) ProductNutrition(productID string, quantity int) (*ProductServing, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	product, err := svc.Products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	grams := product.UnitGrams * float64(quantity)
	return &ProductServing{
		ProductID:   product.ID,
		Quantity:    quantity,
		Grams:       grams,
		Nutrition:   product.Nutrition.Scale(grams),
		CarbonGrams: product.CarbonGrams * float64(quantity),
	}, nil
}

// ListRooms returns all farm-stay rooms.
func (svc *DefaultCatalogService) ListRooms() ([]models.Room, error) {
	return svc.Stay.GetRooms()
}

// GetRoom returns a single room by ID.
func (svc *DefaultCatalogService) GetRoom(roomID string) (*models.Room, error) {
	return svc.Stay.GetRoomByID(roomID)
}

// ListActivities returns the farm activity catalog.
func (svc *DefaultCatalogService) ListActivities() ([]models.Activity, error) {
	return svc.Stay.GetActivities()
}

// ListPackages returns the special package catalog.
func (svc *DefaultCatalogService) ListPackages() ([]models.SpecialPackage, error) {
	return svc.Stay.GetPackages()
}
