package handlers

import (
	"errors"
	"log"

	"grostory/internal/models"
	"grostory/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the per-user saved cart. All routes
// require a verified identity; the owner is always taken from the token,
// never from the request body.
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the cart routes behind the auth middleware.
func (h *CartHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	cartRoutes := router.Group("/cart", authRequired)
	cartRoutes.Get("/", h.HandleGet)
	cartRoutes.Post("/", h.HandleSave)
	cartRoutes.Delete("/", h.HandleClear)
}

// SaveCartRequest is the request body for saving a cart.
type SaveCartRequest struct {
	Items []models.CartItem `json:"items"`
}

// HandleGet returns the caller's saved cart, empty when none exists.
func (h *CartHandler) HandleGet(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	items, err := h.cartService.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"items": items,
	})
}

// HandleSave overwrites the caller's cart wholesale with the posted items.
func (h *CartHandler) HandleSave(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req SaveCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	items, err := h.cartService.Replace(userID, req.Items)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid cart items",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Cart saved successfully",
		"items":   items,
	})
}

// HandleClear deletes the caller's cart entirely.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	if err := h.cartService.Clear(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared successfully",
	})
}
