package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"grostory/internal/handlers"
	"grostory/internal/middleware"
	"grostory/internal/models"
	"grostory/internal/repositories"
	"grostory/internal/services"
	"grostory/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":3001")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("SQLITE_PATH", "grostory.db")
	viper.SetDefault("JWT_SECRET", "your-secret-key")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	// Postgres when DATABASE_DSN is configured, a local sqlite file otherwise.
	var dialector gorm.Dialector
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(viper.GetString("SQLITE_PATH"))
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Cart{}, &models.CartItem{}, &models.GroceryItem{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Storefront events are best-effort; the server runs without a broker.
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, storefront events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	groceryRepo := repositories.NewGORMGroceryRepository(db)

	// --- Services ---
	tokenService := services.NewTokenService(viper.GetString("JWT_SECRET"), services.DefaultTokenValidity)
	var events services.EventPublisher
	if mqClient != nil {
		events = mqClient
	}
	authService := services.NewAuthService(userRepo, tokenService, events)
	cartService := services.NewCartService(cartRepo, events)
	groceryService := services.NewGroceryService(groceryRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	cartHandler := handlers.NewCartHandler(cartService)
	groceryHandler := handlers.NewGroceryHandler(groceryService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	authRequired := middleware.AuthRequired(authService)

	api := app.Group("/api")
	authHandler.RegisterRoutes(api, authRequired)
	cartHandler.RegisterRoutes(api, authRequired)
	groceryHandler.RegisterRoutes(api, authRequired)

	// --- Health Check Endpoint ---
	api.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Disconnected"
		}
		return c.JSON(fiber.Map{
			"status":   "OK",
			"message":  "Backend server is running",
			"dbStatus": dbStatus,
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Gro-Story Backend API",
		})
	})

	// --- Storefront Event Consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting storefront event consumer...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Storefront event [%s]: %s", msg.RoutingKey, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeStorefrontEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start storefront event consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
