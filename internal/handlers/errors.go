package handlers

import (
	"errors"
	"log/slog"

	"github.com/beauxarts/marketplace-api/internal/dto"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders errors that escaped a handler, including recovered
// panics, in the response envelope. Server error details are logged and
// reported but never returned.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		slog.Error("unhandled server error",
			"request_id", requestID(c),
			"action", c.Method()+" "+c.Path(),
			"error", err.Error(),
		)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		return fail(c, code, dto.CodeInternal, "Internal server error", nil)
	}

	return fail(c, code, codeForStatus(code), message, nil)
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusUnauthorized:
		return dto.CodeUnauthorized
	case fiber.StatusForbidden:
		return dto.CodeForbidden
	case fiber.StatusNotFound:
		return dto.CodeNotFound
	case fiber.StatusConflict:
		return dto.CodeConflict
	case fiber.StatusTooManyRequests:
		return dto.CodeRateLimited
	default:
		return dto.CodeValidation
	}
}
