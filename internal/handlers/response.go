package handlers

import (
	"errors"
	"log/slog"

	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/identity"
	"github.com/beauxarts/marketplace-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.Success(message, data))
}

func fail(c *fiber.Ctx, status int, code, message string, details interface{}) error {
	return c.Status(status).JSON(dto.ErrorResponse(code, message, details))
}

// bind parses the JSON body into req and validates it. When it returns false
// the error response has already been written and err is its write error.
func bind(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, fail(c, fiber.StatusBadRequest, dto.CodeValidation, "Invalid request body", nil)
	}
	if errs := dto.Validate(req); errs != nil {
		return false, fail(c, fiber.StatusBadRequest, dto.CodeValidation, "Validation failed", errs)
	}
	return true, nil
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}

func caller(c *fiber.Ctx) (identity.Identity, error) {
	id, err := identity.FromCtx(c)
	if err != nil {
		return id, fail(c, fiber.StatusUnauthorized, dto.CodeUnauthorized, "Authentication required", nil)
	}
	return id, nil
}

// serviceError maps a service error to a response. Unknown errors are logged
// and reported as a generic 500 with fallback as the message.
func serviceError(c *fiber.Ctx, action string, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, dto.CodeValidation, err.Error(), nil)
	case errors.Is(err, services.ErrUnknownCategory):
		return fail(c, fiber.StatusBadRequest, dto.CodeValidation, "One or more categories do not exist", nil)
	case errors.Is(err, services.ErrAlreadyArtist):
		return fail(c, fiber.StatusBadRequest, dto.CodeValidation, "You are already an artist", nil)
	case errors.Is(err, services.ErrEmailTaken):
		return fail(c, fiber.StatusConflict, dto.CodeUserExists, "User with this email already exists", nil)
	case errors.Is(err, services.ErrStoreNameTaken):
		return fail(c, fiber.StatusConflict, dto.CodeConflict, "Store name already taken", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, dto.CodeUnauthorized, "Invalid email or password.", nil)
	case errors.Is(err, services.ErrForbidden):
		return fail(c, fiber.StatusForbidden, dto.CodeForbidden, "You do not have access to this resource", nil)
	case errors.Is(err, services.ErrArtworkNotFound):
		return fail(c, fiber.StatusNotFound, dto.CodeNotFound, "Artwork not found", nil)
	case errors.Is(err, services.ErrArtistProfileRequired):
		return fail(c, fiber.StatusNotFound, dto.CodeNotFound, "Artist profile not found", nil)
	case errors.Is(err, services.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, dto.CodeNotFound, "User not found", nil)
	}

	logError(c, action, err)
	return fail(c, fiber.StatusInternalServerError, dto.CodeInternal, fallback, nil)
}

func logError(c *fiber.Ctx, action string, err error) {
	attrs := []any{
		"request_id", requestID(c),
		"action", action,
		"error", err.Error(),
	}
	if id, idErr := identity.FromCtx(c); idErr == nil {
		attrs = append(attrs, "user_id", id.UserID.String())
	}
	slog.Error("request failed", attrs...)
}

func requestID(c *fiber.Ctx) string {
	if rid, ok := c.Locals("requestid").(string); ok {
		return rid
	}
	return c.Get(fiber.HeaderXRequestID)
}
