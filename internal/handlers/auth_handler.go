package handlers

import (
	"errors"
	"log"

	"grostory/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes. The verify route is
// mounted behind the auth middleware by the caller.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/signup", h.HandleSignUp)
	authRoutes.Post("/login", h.HandleLogIn)
	authRoutes.Post("/verify", authRequired, h.HandleVerify)
}

// CredentialsRequest is the request body for signup and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleSignUp handles new user registration.
func (h *AuthHandler) HandleSignUp(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing signup request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}
	if err := h.validate.Var(req.Email, "email"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid email address",
		})
	}

	user, token, err := h.authService.SignUp(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Password must be at least 6 characters",
			})
		case errors.Is(err, services.ErrDuplicateEmail):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "User already exists with this email",
			})
		default:
			log.Printf("Signup error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	})
}

// HandleLogIn handles user login and issues a session token.
func (h *AuthHandler) HandleLogIn(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	user, token, err := h.authService.LogIn(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		default:
			log.Printf("Login error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// HandleVerify confirms the caller's token is still valid. Runs behind the
// auth middleware, so reaching it means the token passed verification.
func (h *AuthHandler) HandleVerify(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"valid": true,
		"user": fiber.Map{
			"uid":   c.Locals("user_id"),
			"email": c.Locals("email"),
		},
	})
}
