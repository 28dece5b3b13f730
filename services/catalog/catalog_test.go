package catalog

import (
	"fmt"
	"testing"

	"farmstead/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductRepo struct{}

var stubProducts = []models.Product{
	{ID: "prod-tomato", Name: "Heirloom Tomatoes", Category: "vegetables", UnitGrams: 500, CarbonGrams: 300,
		Nutrition: models.Nutrition{Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, Fiber: 1.2}},
	{ID: "prod-eggs", Name: "Pasture Eggs", Category: "dairy", UnitGrams: 600},
	{ID: "prod-kale", Name: "Curly Kale", Category: "vegetables", UnitGrams: 200},
}

func (stubProductRepo) Create(*models.Product) error { return nil }

func (stubProductRepo) GetByID(productID string) (*models.Product, error) {
	for _, p := range stubProducts {
		if p.ID == productID {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with id %s not found", productID)
}

func (stubProductRepo) GetAll() ([]models.Product, error) { return stubProducts, nil }

func (stubProductRepo) GetByCategory(category string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range stubProducts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (stubProductRepo) Search(string) ([]models.Product, error) { return nil, nil }

func (stubProductRepo) DecrementStock(string, int) error { return nil }

func newTestCatalog() *DefaultCatalogService {
	return &DefaultCatalogService{Products: stubProductRepo{}}
}

func TestCategoriesSortedDistinct(t *testing.T) {
	categories, err := newTestCatalog().Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"dairy", "vegetables"}, categories)
}

func TestListProductsByCategory(t *testing.T) {
	products, err := newTestCatalog().ListProducts("vegetables", "")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductNutritionScaling(t *testing.T) {
	serving, err := newTestCatalog().ProductNutrition("prod-tomato", 2)
	require.NoError(t, err)

	// 2 units x 500g = 1000g at per-100g facts.
	assert.Equal(t, 1000.0, serving.Grams)
	assert.InDelta(t, 180.0, serving.Nutrition.Calories, 0.001)
	assert.InDelta(t, 9.0, serving.Nutrition.Protein, 0.001)
	assert.Equal(t, 600.0, serving.CarbonGrams)
}

func TestProductNutritionRejectsNonPositiveQuantity(t *testing.T) {
	_, err := newTestCatalog().ProductNutrition("prod-tomato", 0)
	assert.Error(t, err)
}
