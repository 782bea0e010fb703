package services

import (
	"encoding/json"
	"log"

	"grostory/internal/models"
	"grostory/internal/repositories"
)

// EventPublisher publishes storefront events. Satisfied by rabbitmq.Client.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CartService handles business logic for per-user saved carts.
type CartService struct {
	cartRepo repositories.CartRepository
	events   EventPublisher
}

// NewCartService creates a new CartService. The event publisher may be nil,
// in which case events are skipped.
func NewCartService(cartRepo repositories.CartRepository, events EventPublisher) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		events:   events,
	}
}

// Get returns the user's saved items, empty when no cart exists.
func (s *CartService) Get(userID string) ([]models.CartItem, error) {
	items, err := s.cartRepo.Get(userID)
	if err != nil {
		log.Printf("Failed to fetch cart for user %s: %v", userID, err)
		return nil, ErrInternal
	}
	return items, nil
}

// Replace overwrites the user's cart wholesale with a normalized copy of the
// given items and returns what was persisted.
func (s *CartService) Replace(userID string, items []models.CartItem) ([]models.CartItem, error) {
	normalized, err := NormalizeItems(items)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.Replace(userID, normalized); err != nil {
		log.Printf("Failed to save cart for user %s: %v", userID, err)
		return nil, ErrInternal
	}

	s.publish("cart.saved", map[string]interface{}{
		"userID":    userID,
		"itemCount": len(normalized),
	})
	return normalized, nil
}

// Clear deletes the user's cart entirely. Idempotent.
func (s *CartService) Clear(userID string) error {
	if err := s.cartRepo.Clear(userID); err != nil {
		log.Printf("Failed to clear cart for user %s: %v", userID, err)
		return ErrInternal
	}

	s.publish("cart.cleared", map[string]interface{}{
		"userID": userID,
	})
	return nil
}

// publish sends a best-effort storefront event. Failures are logged and
// swallowed; they never affect the caller.
func (s *CartService) publish(routingKey string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.events.Publish("storefront", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

// NormalizeItems validates and canonicalizes a cart item list: lines with a
// non-positive quantity are dropped, duplicate product IDs are merged by
// summing quantities (first occurrence keeps its position), and negative
// prices are rejected.
func NormalizeItems(items []models.CartItem) ([]models.CartItem, error) {
	normalized := make([]models.CartItem, 0, len(items))
	index := make(map[int]int) // productID -> position in normalized

	for _, item := range items {
		if item.Price < 0 {
			return nil, ErrValidation
		}
		if item.Quantity <= 0 {
			continue
		}
		if pos, ok := index[item.ProductID]; ok {
			normalized[pos].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(normalized)
		normalized = append(normalized, item)
	}
	return normalized, nil
}
