package handlers

import (
	"time"

	"github.com/beauxarts/marketplace-api/internal/database"
	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	health := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        "ok",
	}
	if err := database.Ping(h.db); err != nil {
		health.Status = "degraded"
		health.DB = "unhealthy"
		logError(c, "health.db", err)
		return fail(c, fiber.StatusServiceUnavailable, dto.CodeInternal, "Database unavailable", health)
	}
	return respond(c, fiber.StatusOK, "Service healthy", health)
}
