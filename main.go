package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"ecart/internal/config"
	"ecart/internal/database"
	"ecart/internal/handlers"
	"ecart/internal/repositories"
	"ecart/internal/services"
	"ecart/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	// Startup acquisition retries through transient outages; once the
	// pool is up, per-request work just checks connections out of it.
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Schema trouble is logged but does not stop the server: /health
	// and /ready stay useful while an operator sorts the store out.
	if err := database.EnsureSchema(db); err != nil {
		log.Printf("WARNING: could not initialize schema: %v", err)
	} else {
		log.Println("E-cart database initialized successfully.")
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("WARNING: RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			defer mqClient.Close()
		}
	}

	// --- App assembly ---
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	app := newApp(db, cfg, publisher)

	// --- Order event consumer ---
	if mqClient != nil {
		if err := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
			log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, msg.Body)
			return nil
		}); err != nil {
			log.Printf("Failed to start order event consumer: %v", err)
		}
	}

	// --- Serve ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
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

// newApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil; checkout then skips event publishing.
func newApp(db *gorm.DB, cfg *config.Config, publisher services.EventPublisher) *fiber.App {
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	catalogService := services.NewCatalogService(productRepo)
	cartService := services.NewCartService(cartRepo, publisher)
	orderService := services.NewOrderService(orderRepo)

	app := fiber.New()
	app.Use(logger.New())

	handlers.NewUIHandler(catalogService, cartService, orderService, db, cfg).RegisterRoutes(app)
	handlers.NewAPIHandler(catalogService, cartService, orderService).RegisterRoutes(app)
	handlers.NewSystemHandler(db, cfg).RegisterRoutes(app)

	return app
}
