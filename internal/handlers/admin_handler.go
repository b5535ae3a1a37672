package handlers

import (
	"github.com/beauxarts/marketplace-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	res, err := h.admin.Dashboard(c.UserContext())
	if err != nil {
		return serviceError(c, "admin.dashboard", err, "Error loading admin dashboard")
	}
	return respond(c, fiber.StatusOK, "Dashboard retrieved successfully", res)
}
