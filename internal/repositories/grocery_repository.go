package repositories

import "grostory/internal/models"

// GroceryRepository defines the interface for catalog data access.
type GroceryRepository interface {
	GetAll() ([]models.GroceryItem, error)
	Create(item *models.GroceryItem) error
}
