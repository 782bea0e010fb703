package repositories

import (
	"fmt"

	"grostory/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMGroceryRepository is a GORM implementation of GroceryRepository.
type GORMGroceryRepository struct {
	db *gorm.DB
}

// NewGORMGroceryRepository creates a new instance of GORMGroceryRepository.
func NewGORMGroceryRepository(db *gorm.DB) *GORMGroceryRepository {
	return &GORMGroceryRepository{
		db: db,
	}
}

// GetAll retrieves all catalog items.
func (r *GORMGroceryRepository) GetAll() ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	if err := r.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get groceries: %w", err)
	}
	return items, nil
}

// Create adds a new catalog item.
func (r *GORMGroceryRepository) Create(item *models.GroceryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create grocery item: %w", err)
	}
	return nil
}
