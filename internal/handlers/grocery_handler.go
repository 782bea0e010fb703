package handlers

import (
	"log"

	"grostory/internal/models"
	"grostory/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GroceryHandler handles HTTP requests for the product catalog.
type GroceryHandler struct {
	groceryService *services.GroceryService
	validate       *validator.Validate
}

// NewGroceryHandler creates a new GroceryHandler.
func NewGroceryHandler(groceryService *services.GroceryService) *GroceryHandler {
	return &GroceryHandler{
		groceryService: groceryService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the catalog routes behind the auth middleware.
func (h *GroceryHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	groceryRoutes := router.Group("/groceries", authRequired)
	groceryRoutes.Get("/", h.HandleList)
	groceryRoutes.Post("/", h.HandleCreate)
}

// HandleList returns all catalog items.
func (h *GroceryHandler) HandleList(c *fiber.Ctx) error {
	items, err := h.groceryService.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.JSON(items)
}

// HandleCreate adds a new catalog item.
func (h *GroceryHandler) HandleCreate(c *fiber.Ctx) error {
	var item models.GroceryItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing grocery request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Validation failed",
		})
	}

	if err := h.groceryService.Create(&item); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}
