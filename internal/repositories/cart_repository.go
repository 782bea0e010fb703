package repositories

import "grostory/internal/models"

// CartRepository defines the interface for cart data access. All operations
// are scoped to a single user; callers must have verified the identity first.
type CartRepository interface {
	// Get returns the user's saved items, or an empty slice when no cart
	// exists. A missing cart is not an error.
	Get(userID string) ([]models.CartItem, error)
	// Replace overwrites the user's cart wholesale with the given items,
	// creating the cart lazily on first save.
	Replace(userID string, items []models.CartItem) error
	// Clear deletes the user's cart document entirely. Clearing a missing
	// cart is a no-op.
	Clear(userID string) error
}
