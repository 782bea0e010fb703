package models

import "time"

// Cart holds the saved shopping cart for a user. The unique index on UserID
// enforces one cart per user.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a single line in a cart. ProductID uses the json key "id" to
// match the storefront wire format.
type CartItem struct {
	LineID    uint    `json:"-" gorm:"primaryKey"`
	CartID    string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID int     `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Image     string  `json:"image" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
}
