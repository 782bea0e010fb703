package repositories

import (
	"errors"
	"fmt"
	"time"

	"grostory/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Get returns the user's saved items, empty when no cart exists.
func (r *GORMCartRepository) Get(userID string) ([]models.CartItem, error) {
	var cart models.Cart
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("line_id ASC")
	}).First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.CartItem{}, nil
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart.Items, nil
}

// Replace overwrites the user's cart wholesale. The delete-then-insert runs
// in a transaction so readers never observe a half-replaced cart.
func (r *GORMCartRepository) Replace(userID string, items []models.CartItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.First(&cart, "user_id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{
				ID:     uuid.New().String(),
				UserID: userID,
			}
			if err := tx.Create(&cart).Error; err != nil {
				return fmt.Errorf("failed to create cart: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to remove previous cart items: %w", err)
		}

		for i := range items {
			items[i].LineID = 0
			items[i].CartID = cart.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("failed to save cart items: %w", err)
			}
		}

		if err := tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("updated_at", time.Now()).Error; err != nil {
			return fmt.Errorf("failed to refresh cart timestamp: %w", err)
		}
		return nil
	})
}

// Clear deletes the user's cart and its items. Idempotent.
func (r *GORMCartRepository) Clear(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.First(&cart, "user_id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart items: %w", err)
		}
		if err := tx.Delete(&cart).Error; err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}
		return nil
	})
}
