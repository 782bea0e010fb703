package repositories

import (
	"sync"

	"grostory/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string][]models.CartItem // keyed by user ID
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string][]models.CartItem),
	}
}

// Get returns the user's saved items, empty when no cart exists.
func (r *MockCartRepository) Get(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, ok := r.carts[userID]
	if !ok {
		return []models.CartItem{}, nil
	}
	copied := make([]models.CartItem, len(items))
	copy(copied, items)
	return copied, nil
}

// Replace overwrites the user's cart wholesale.
func (r *MockCartRepository) Replace(userID string, items []models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]models.CartItem, len(items))
	copy(copied, items)
	r.carts[userID] = copied
	return nil
}

// Clear removes the user's cart. Idempotent.
func (r *MockCartRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
