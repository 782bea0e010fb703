package repositories

import (
	"sync"
	"time"

	"grostory/internal/models"

	"github.com/google/uuid"
)

// MockGroceryRepository is an in-memory implementation of GroceryRepository.
type MockGroceryRepository struct {
	items map[string]models.GroceryItem
	mu    sync.RWMutex
}

// NewMockGroceryRepository creates a new instance of MockGroceryRepository.
func NewMockGroceryRepository() *MockGroceryRepository {
	return &MockGroceryRepository{
		items: make(map[string]models.GroceryItem),
	}
}

// GetAll returns all catalog items.
func (r *MockGroceryRepository) GetAll() ([]models.GroceryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.GroceryItem, 0, len(r.items))
	for _, item := range r.items {
		list = append(list, item)
	}
	return list, nil
}

// Create adds a new catalog item.
func (r *MockGroceryRepository) Create(item *models.GroceryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	r.items[item.ID] = *item
	return nil
}
