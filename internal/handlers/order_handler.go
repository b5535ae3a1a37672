package handlers

import (
	"errors"
	"log/slog"

	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/metrics"
	"github.com/beauxarts/marketplace-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orders  *services.OrderService
	metrics *metrics.Metrics
}

func NewOrderHandler(orders *services.OrderService, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{orders: orders, metrics: m}
}

// Checkout serves POST /api/orders. Failures report only a category code; the
// failing item is logged, never returned.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.CheckoutRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	order, err := h.orders.Checkout(c.UserContext(), who, &req)
	if err == nil {
		h.metrics.RecordCheckout("success")
		return respond(c, fiber.StatusCreated, "Order placed successfully", order)
	}

	var (
		status int
		code   string
	)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		h.metrics.RecordCheckout(dto.CodeValidation)
		return fail(c, fiber.StatusBadRequest, dto.CodeValidation, "Cart is empty", nil)
	case errors.Is(err, services.ErrOutOfStock):
		status, code = fiber.StatusConflict, dto.CodeOutOfStock
	case errors.Is(err, services.ErrPriceMismatch):
		status, code = fiber.StatusConflict, dto.CodePriceMismatch
	case errors.Is(err, services.ErrArtworkNotFound):
		status, code = fiber.StatusNotFound, dto.CodeNotFound
	default:
		h.metrics.RecordCheckout(dto.CodeInternal)
		logError(c, "orders.checkout", err)
		return fail(c, fiber.StatusInternalServerError, dto.CodeInternal, "Checkout failed", nil)
	}

	h.metrics.RecordCheckout(code)
	slog.Warn("checkout rejected",
		"request_id", requestID(c),
		"user_id", who.UserID.String(),
		"action", "orders.checkout",
		"error", err.Error(),
	)
	return fail(c, status, code, "Checkout failed", nil)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListOrders(c.UserContext(), who)
	if err != nil {
		return serviceError(c, "orders.list", err, "Error fetching orders")
	}
	return respond(c, fiber.StatusOK, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) ListAddresses(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	addresses, err := h.orders.ListAddresses(c.UserContext(), who)
	if err != nil {
		return serviceError(c, "addresses.list", err, "Error fetching shipping addresses")
	}
	return respond(c, fiber.StatusOK, "Shipping addresses retrieved successfully", addresses)
}

func (h *OrderHandler) CreateAddress(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.AddressRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	address, err := h.orders.CreateAddress(c.UserContext(), who, &req)
	if err != nil {
		return serviceError(c, "addresses.create", err, "Error creating shipping address")
	}
	return respond(c, fiber.StatusCreated, "Shipping address created successfully", address)
}
