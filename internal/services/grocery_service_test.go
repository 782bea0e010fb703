package services_test

import (
	"testing"

	"grostory/internal/models"
	"grostory/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGroceryRepo is a mock implementation of repositories.GroceryRepository
type MockGroceryRepo struct {
	mock.Mock
}

func (m *MockGroceryRepo) GetAll() ([]models.GroceryItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GroceryItem), args.Error(1)
}

func (m *MockGroceryRepo) Create(item *models.GroceryItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func TestGroceryService_GetAll(t *testing.T) {
	mockRepo := new(MockGroceryRepo)
	service := services.NewGroceryService(mockRepo)

	expected := []models.GroceryItem{
		{ID: "1", Name: "Apple", Price: 1.5, Category: "fruit", InStock: true},
		{ID: "2", Name: "Bread", Price: 3.0, Category: "bakery", InStock: true},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	items, err := service.GetAll()
	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	mockRepo.AssertExpectations(t)
}

func TestGroceryService_GetAll_StoreFailure(t *testing.T) {
	mockRepo := new(MockGroceryRepo)
	service := services.NewGroceryService(mockRepo)

	mockRepo.On("GetAll").Return(nil, assert.AnError).Once()

	_, err := service.GetAll()
	assert.ErrorIs(t, err, services.ErrInternal)
	mockRepo.AssertExpectations(t)
}

func TestGroceryService_Create(t *testing.T) {
	mockRepo := new(MockGroceryRepo)
	service := services.NewGroceryService(mockRepo)

	item := &models.GroceryItem{Name: "Milk", Price: 2.0}
	mockRepo.On("Create", item).Return(nil).Once()

	assert.NoError(t, service.Create(item))
	mockRepo.AssertExpectations(t)
}
