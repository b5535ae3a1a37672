package handlers

import (
	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	resp, err := h.authService.Signup(c.UserContext(), &req)
	if err != nil {
		return serviceError(c, "auth.signup", err, "Error creating account")
	}
	return respond(c, fiber.StatusCreated, "Account created successfully", resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return serviceError(c, "auth.login", err, "Error logging in")
	}
	return respond(c, fiber.StatusOK, "Login successful", resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Me(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "auth.me", err, "Error loading account")
	}
	return respond(c, fiber.StatusOK, "Account retrieved successfully", user)
}
