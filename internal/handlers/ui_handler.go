package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecart/internal/config"
	"ecart/internal/database"
	"ecart/internal/models"
	"ecart/internal/repositories"
	"ecart/internal/services"
)

// UIHandler renders the HTML storefront and handles its form posts.
// Every mutation redirects back to "/" with a flash message; user
// errors never surface as 5xx on these paths.
type UIHandler struct {
	catalog *services.CatalogService
	cart    *services.CartService
	orders  *services.OrderService
	db      *gorm.DB
	cfg     *config.Config
}

// NewUIHandler creates a new UIHandler.
func NewUIHandler(catalog *services.CatalogService, cart *services.CartService, orders *services.OrderService, db *gorm.DB, cfg *config.Config) *UIHandler {
	return &UIHandler{
		catalog: catalog,
		cart:    cart,
		orders:  orders,
		db:      db,
		cfg:     cfg,
	}
}

// RegisterRoutes registers the storefront routes with the Fiber app.
func (h *UIHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.HandleIndex)
	app.Post("/ui/products", h.HandleAddProduct)
	app.Post("/ui/cart/add", h.HandleAddToCart)
	app.Post("/ui/cart/:id/remove", h.HandleRemoveFromCart)
	app.Post("/ui/checkout", h.HandleCheckout)
}

// HandleIndex renders the full storefront page.
func (h *UIHandler) HandleIndex(c *fiber.Ctx) error {
	flashType := c.Query("type", "success")
	if flashType != "success" && flashType != "error" {
		flashType = "success"
	}

	data := pageData{
		FlashMessage: c.Query("msg"),
		FlashType:    flashType,
		NodeName:     h.cfg.NodeName,
		DBHost:       h.cfg.DBHost,
	}

	if version, err := database.ServerVersion(h.db); err == nil {
		data.DBConnected = true
		data.DBVersion = version
	}

	// Page sections degrade independently: a failing query leaves its
	// section empty instead of failing the whole page.
	if products, err := h.catalog.ListProducts(); err == nil {
		data.Products = products
	} else {
		log.Printf("Error loading products for UI: %v", err)
	}
	if entries, err := h.cart.Items(); err == nil {
		data.CartEntries = entries
		for _, e := range entries {
			data.CartCount += e.Quantity
		}
	} else {
		log.Printf("Error loading cart for UI: %v", err)
	}
	if total, err := h.cart.Total(); err == nil {
		data.CartTotal = total
	}
	if orders, err := h.orders.RecentOrders(10); err == nil {
		data.OrderCount = len(orders)
		if len(orders) > 5 {
			orders = orders[:5]
		}
		data.Orders = orders
	} else {
		log.Printf("Error loading orders for UI: %v", err)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		log.Printf("Error rendering storefront: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("template error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// HandleAddProduct adds a new catalog entry from the storefront form.
func (h *UIHandler) HandleAddProduct(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return redirectFlash(c, "Product name is required.", "error")
	}

	price, perr := strconv.ParseFloat(strings.TrimSpace(c.FormValue("price")), 64)
	stock := 0
	var serr error
	if raw := strings.TrimSpace(c.FormValue("stock")); raw != "" {
		stock, serr = strconv.Atoi(raw)
	}
	if perr != nil || serr != nil || price < 0 || stock < 0 {
		return redirectFlash(c, "Invalid price or stock value.", "error")
	}

	product := &models.Product{
		Name:        name,
		Description: strings.TrimSpace(c.FormValue("description")),
		Price:       price,
		Stock:       stock,
		Category:    strings.TrimSpace(c.FormValue("category")),
	}
	if err := h.catalog.AddProduct(product); err != nil {
		return redirectFlash(c, "Error: "+err.Error(), "error")
	}
	return redirectFlash(c, fmt.Sprintf("Product '%s' added ✓", name), "success")
}

// HandleAddToCart merges a product into the cart.
func (h *UIHandler) HandleAddToCart(c *fiber.Ctx) error {
	productID, err := strconv.ParseUint(strings.TrimSpace(c.FormValue("product_id")), 10, 32)
	if err != nil {
		return redirectFlash(c, "Invalid product.", "error")
	}

	qty, err := h.parseQuantity(c.FormValue("quantity"))
	if err != nil {
		return redirectFlash(c, "Invalid quantity.", "error")
	}

	if err := h.cart.Add(uint(productID), qty); err != nil {
		return redirectFlash(c, "Error: "+err.Error(), "error")
	}
	return redirectFlash(c, "Item added to cart ✓", "success")
}

// HandleRemoveFromCart deletes one cart row.
func (h *UIHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	cartID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return redirectFlash(c, "Invalid cart item.", "error")
	}

	if err := h.cart.Remove(uint(cartID)); err != nil {
		return redirectFlash(c, "Error: "+err.Error(), "error")
	}
	return redirectFlash(c, "Item removed from cart ✓", "success")
}

// HandleCheckout places an order for the whole cart.
func (h *UIHandler) HandleCheckout(c *fiber.Ctx) error {
	order, err := h.cart.Checkout()
	if err != nil {
		if errors.Is(err, repositories.ErrEmptyCart) {
			return redirectFlash(c, "Cart is empty.", "error")
		}
		return redirectFlash(c, "Checkout error: "+err.Error(), "error")
	}
	return redirectFlash(c, fmt.Sprintf("Order placed! Total: $%.2f ✓", order.TotalAmount), "success")
}

// parseQuantity applies the input validation policy: lenient mode maps
// malformed input to 1, strict mode rejects it. Quantities below 1 are
// clamped either way.
func (h *UIHandler) parseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		if h.cfg.StrictInput {
			return 0, fmt.Errorf("invalid quantity %q", raw)
		}
		return 1, nil
	}
	if qty < 1 {
		qty = 1
	}
	return qty, nil
}

// redirectFlash sends the browser back to the storefront with a flash
// message carried in query parameters.
func redirectFlash(c *fiber.Ctx, msg, flashType string) error {
	return c.Redirect("/?msg="+url.QueryEscape(msg)+"&type="+flashType, fiber.StatusFound)
}
