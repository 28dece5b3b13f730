// File: database/repository/product/interface.go
package productRepo

import "farmstead/models"

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(productID string) (*models.Product, error)
	GetAll() ([]models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	Search(query string) ([]models.Product, error)
	DecrementStock(productID string, units int) error
}
