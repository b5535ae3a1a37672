package identity

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localsKey = "identity"

type ctxKey struct{}

var ErrNoIdentity = errors.New("no identity in request context")

// Identity is the caller decoded from a verified bearer token.
type Identity struct {
	UserID   uuid.UUID `json:"userId"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Fullname string    `json:"fullname,omitempty"`
}

// Attach stores the identity on the Fiber locals and on the request context
// so services receiving c.UserContext() can read it too.
func Attach(c *fiber.Ctx, id Identity) {
	c.Locals(localsKey, id)
	c.SetUserContext(WithContext(c.UserContext(), id))
}

// FromCtx returns the identity attached by the auth middleware.
func FromCtx(c *fiber.Ctx) (Identity, error) {
	if id, ok := c.Locals(localsKey).(Identity); ok {
		return id, nil
	}
	return Identity{}, ErrNoIdentity
}

func WithContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
