package models

import "time"

// GroceryItem represents a product in the catalog.
type GroceryItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
}
