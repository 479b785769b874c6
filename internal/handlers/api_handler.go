package handlers

import (
	"log"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"ecart/internal/services"
)

// APIHandler serves the JSON REST surface: /products, /cart, /orders.
type APIHandler struct {
	catalog *services.CatalogService
	cart    *services.CartService
	orders  *services.OrderService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(catalog *services.CatalogService, cart *services.CartService, orders *services.OrderService) *APIHandler {
	return &APIHandler{
		catalog: catalog,
		cart:    cart,
		orders:  orders,
	}
}

// RegisterRoutes registers the REST API routes with the Fiber app.
func (h *APIHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/cart", h.HandleGetCart)
	router.Get("/orders", h.HandleGetOrders)
}

// HandleGetProducts returns the full catalog.
func (h *APIHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.catalog.ListProducts()
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": truncateError(err),
		})
	}
	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// HandleGetCart returns the cart contents with the running total.
func (h *APIHandler) HandleGetCart(c *fiber.Ctx) error {
	entries, err := h.cart.Items()
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": truncateError(err),
		})
	}
	total, err := h.cart.Total()
	if err != nil {
		log.Printf("Error getting cart total: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": truncateError(err),
		})
	}
	return c.JSON(fiber.Map{
		"cart":  entries,
		"total": total,
		"count": len(entries),
	})
}

// HandleGetOrders returns the ten most recent orders.
func (h *APIHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.orders.RecentOrders(10)
	if err != nil {
		log.Printf("Error getting orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": truncateError(err),
		})
	}
	return c.JSON(fiber.Map{
		"orders": orders,
		"count":  len(orders),
	})
}

// truncateError keeps API error strings short enough to be harmless in
// a response body. The cut lands on a rune boundary so a multibyte
// character is dropped whole rather than split into invalid UTF-8.
func truncateError(err error) string {
	msg := err.Error()
	if len(msg) <= 80 {
		return msg
	}
	cut := 80
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}
