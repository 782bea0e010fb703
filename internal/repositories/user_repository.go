package repositories

import (
	"strings"

	"grostory/internal/models"
)

// UserRepository defines the interface for credential data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}

// NormalizeEmail lowercases and trims an email address. All stores apply it
// on write and lookup so email comparison is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
