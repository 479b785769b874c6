package handlers

import (
	"context"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecart/internal/config"
	"ecart/internal/database"
)

// SystemHandler serves the liveness, readiness and topology endpoints.
type SystemHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(db *gorm.DB, cfg *config.Config) *SystemHandler {
	return &SystemHandler{
		db:  db,
		cfg: cfg,
	}
}

// RegisterRoutes registers the system routes with the Fiber app.
func (h *SystemHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
	router.Get("/ready", h.HandleReady)
	router.Get("/arch", h.HandleArch)
}

// HandleHealth is the unconditional liveness probe.
func (h *SystemHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleReady pings the database exactly once. Unlike the startup
// connection path there is no retry: an unreachable store must be
// reported fast, not waited out.
func (h *SystemHandler) HandleReady(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ready(ctx, h.db); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
			"db":     err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
		"db":     "connected",
	})
}

// HandleArch describes the deployment topology: where the app runs and
// where the database lives.
func (h *SystemHandler) HandleArch(c *fiber.Ctx) error {
	connected := true
	version, err := database.ServerVersion(h.db)
	if err != nil {
		connected = false
		version = ""
	}

	return c.JSON(fiber.Map{
		"app_server": fiber.Map{
			"role":         "E-Cart Application Server",
			"architecture": runtime.GOARCH,
			"platform":     runtime.GOOS,
			"node":         h.cfg.NodeName,
			"pod":          h.cfg.PodName,
		},
		"database": fiber.Map{
			"role":           "PostgreSQL",
			"host":           h.cfg.DBHost,
			"port":           h.cfg.DBPort,
			"connected":      connected,
			"server_version": version,
		},
	})
}
