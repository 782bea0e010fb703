package services

import (
	"log"

	"grostory/internal/models"
	"grostory/internal/repositories"
)

// GroceryService handles business logic for the product catalog.
type GroceryService struct {
	repo repositories.GroceryRepository
}

// NewGroceryService creates a new GroceryService.
func NewGroceryService(repo repositories.GroceryRepository) *GroceryService {
	return &GroceryService{
		repo: repo,
	}
}

// GetAll retrieves all catalog items.
func (s *GroceryService) GetAll() ([]models.GroceryItem, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		log.Printf("Failed to fetch groceries: %v", err)
		return nil, ErrInternal
	}
	return items, nil
}

// Create adds a new catalog item.
func (s *GroceryService) Create(item *models.GroceryItem) error {
	if err := s.repo.Create(item); err != nil {
		log.Printf("Failed to create grocery item: %v", err)
		return ErrInternal
	}
	return nil
}
