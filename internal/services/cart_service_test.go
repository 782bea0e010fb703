package services_test

import (
	"testing"

	"grostory/internal/models"
	"grostory/internal/repositories"
	"grostory/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func TestCartService_ReplaceThenGet_RoundTrip(t *testing.T) {
	cartService := services.NewCartService(repositories.NewMockCartRepository(), nil)

	items := []models.CartItem{
		{ProductID: 1, Name: "Apple", Price: 1.5, Image: "a.png", Quantity: 2},
		{ProductID: 2, Name: "Bread", Price: 3.0, Image: "b.png", Quantity: 1},
	}

	saved, err := cartService.Replace("user-123", items)
	assert.NoError(t, err)
	assert.Equal(t, items, saved)

	got, err := cartService.Get("user-123")
	assert.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestCartService_Get_MissingCartIsEmpty(t *testing.T) {
	cartService := services.NewCartService(repositories.NewMockCartRepository(), nil)

	items, err := cartService.Get("user-without-cart")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_Clear_Idempotent(t *testing.T) {
	cartService := services.NewCartService(repositories.NewMockCartRepository(), nil)

	_, err := cartService.Replace("user-123", []models.CartItem{
		{ProductID: 1, Name: "Apple", Price: 1.5, Image: "a.png", Quantity: 1},
	})
	assert.NoError(t, err)

	assert.NoError(t, cartService.Clear("user-123"))
	items, err := cartService.Get("user-123")
	assert.NoError(t, err)
	assert.Empty(t, items)

	// Second clear is a no-op, not an error.
	assert.NoError(t, cartService.Clear("user-123"))
	items, err = cartService.Get("user-123")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_Replace_NegativePriceRejected(t *testing.T) {
	cartService := services.NewCartService(repositories.NewMockCartRepository(), nil)

	_, err := cartService.Replace("user-123", []models.CartItem{
		{ProductID: 1, Name: "Apple", Price: -1, Image: "a.png", Quantity: 1},
	})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestCartService_PublishesEvents(t *testing.T) {
	mockEvents := new(MockEventPublisher)
	cartService := services.NewCartService(repositories.NewMockCartRepository(), mockEvents)

	mockEvents.On("Publish", "storefront", "cart.saved", mock.Anything).Return(nil).Once()
	mockEvents.On("Publish", "storefront", "cart.cleared", mock.Anything).Return(nil).Once()

	_, err := cartService.Replace("user-123", []models.CartItem{
		{ProductID: 1, Name: "Apple", Price: 1.5, Image: "a.png", Quantity: 1},
	})
	assert.NoError(t, err)
	assert.NoError(t, cartService.Clear("user-123"))
	mockEvents.AssertExpectations(t)
}

func TestCartService_EventFailureIsNonFatal(t *testing.T) {
	mockEvents := new(MockEventPublisher)
	cartService := services.NewCartService(repositories.NewMockCartRepository(), mockEvents)

	mockEvents.On("Publish", "storefront", "cart.saved", mock.Anything).
		Return(assert.AnError).Once()

	saved, err := cartService.Replace("user-123", []models.CartItem{
		{ProductID: 1, Name: "Apple", Price: 1.5, Image: "a.png", Quantity: 1},
	})
	assert.NoError(t, err)
	assert.Len(t, saved, 1)
	mockEvents.AssertExpectations(t)
}

func TestNormalizeItems(t *testing.T) {
	t.Run("MergesDuplicateProductIDs", func(t *testing.T) {
		normalized, err := services.NormalizeItems([]models.CartItem{
			{ProductID: 1, Name: "Apple", Price: 1.5, Image: "a.png", Quantity: 1},
			{ProductID: 2, Name: "Bread", Price: 3.0, Image: "b.png", Quantity: 1},
			{ProductID: 1, Name: "Apple", Price: 1.5, Image: "a.png", Quantity: 2},
		})
		assert.NoError(t, err)
		assert.Len(t, normalized, 2)
		assert.Equal(t, 1, normalized[0].ProductID)
		assert.Equal(t, 3, normalized[0].Quantity)
	})

	t.Run("DropsNonPositiveQuantities", func(t *testing.T) {
		normalized, err := services.NormalizeItems([]models.CartItem{
			{ProductID: 1, Name: "Apple", Price: 1.5, Image: "a.png", Quantity: 0},
			{ProductID: 2, Name: "Bread", Price: 3.0, Image: "b.png", Quantity: -3},
			{ProductID: 3, Name: "Milk", Price: 2.0, Image: "m.png", Quantity: 1},
		})
		assert.NoError(t, err)
		assert.Len(t, normalized, 1)
		assert.Equal(t, 3, normalized[0].ProductID)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		normalized, err := services.NormalizeItems(nil)
		assert.NoError(t, err)
		assert.Empty(t, normalized)
	})
}
