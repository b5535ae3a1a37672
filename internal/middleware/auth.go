package middleware

import (
	"errors"
	"log/slog"

	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/identity"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLocalsKey = "token"

// JWTProtected verifies the bearer token and attaches the caller identity.
// A missing or malformed header is 401; a token that fails verification is 403.
// The response never says which check failed.
func JWTProtected(tokens *identity.TokenIssuer) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: tokens.Secret()},
		Claims:     &identity.Claims{},
		ContextKey: tokenLocalsKey,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals(tokenLocalsKey).(*jwt.Token)
			if !ok {
				return forbidden(c)
			}
			claims, ok := token.Claims.(*identity.Claims)
			if !ok || claims.Issuer != identity.Issuer || claims.ExpiresAt == nil {
				return forbidden(c)
			}
			id, err := claims.Identity()
			if err != nil {
				return forbidden(c)
			}
			identity.Attach(c, id)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse(
					dto.CodeUnauthorized, "Authentication required", nil,
				))
			}
			slog.Debug("token rejected", "path", c.Path(), "error", err)
			return forbidden(c)
		},
	})
}

// RequireRoles allows the request through only when the identity attached by
// JWTProtected has one of roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity.FromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse(
				dto.CodeUnauthorized, "Authentication required", nil,
			))
		}
		if !id.HasAnyRole(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse(
				dto.CodeForbidden, "You do not have access to this resource", nil,
			))
		}
		return c.Next()
	}
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse(
		dto.CodeUnauthorized, "Invalid or expired token", nil,
	))
}
