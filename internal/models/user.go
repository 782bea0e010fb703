package models

import "time"

// User represents a registered shopper.
type User struct {
	ID           string    `json:"uid" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	DisplayName  *string   `json:"displayName"`
	CreatedAt    time.Time `json:"createdAt"`
}
