package routes

import (
	"time"

	"github.com/beauxarts/marketplace-api/internal/config"
	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/handlers"
	"github.com/beauxarts/marketplace-api/internal/identity"
	"github.com/beauxarts/marketplace-api/internal/metrics"
	"github.com/beauxarts/marketplace-api/internal/middleware"
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	tokens *identity.TokenIssuer,
	m *metrics.Metrics,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	artworkHandler *handlers.ArtworkHandler,
	artistHandler *handlers.ArtistHandler,
	orderHandler *handlers.OrderHandler,
	adminHandler *handlers.AdminHandler,
) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	api := app.Group("/api")
	api.Use(rateLimit(cfg.RateLimit))

	// Health
	api.Get("/health", healthHandler.Check)

	protected := middleware.JWTProtected(tokens)
	sellers := middleware.RequireRoles(models.RoleSeller, models.RoleAdmin)
	sanitize := middleware.SanitizeJSON()

	// Auth: stricter per-IP limit on credential endpoints
	auth := api.Group("/auth")
	authLimit := rateLimit(cfg.AuthRateLimit)
	auth.Post("/signup", authLimit, authHandler.Signup)
	auth.Post("/login", authLimit, authHandler.Login)
	auth.Get("/me", protected, authHandler.Me)

	// Catalog (public reads, seller writes)
	api.Get("/artworks", artworkHandler.List)
	api.Get("/artworks/:id", artworkHandler.Get)
	api.Post("/artworks", protected, sellers, sanitize, artworkHandler.Create)
	api.Patch("/artworks/:id", protected, sellers, sanitize, artworkHandler.Update)
	api.Delete("/artworks/:id", protected, sellers, artworkHandler.Delete)
	api.Get("/categories", artworkHandler.Categories)

	// Artists
	api.Get("/artists", artistHandler.List)
	api.Post("/artists/apply", protected, sanitize, artistHandler.Apply)
	api.Get("/artists/dashboard", protected, sellers, artistHandler.Dashboard)
	api.Get("/artists/profile", protected, sellers, artistHandler.GetProfile)
	api.Put("/artists/profile", protected, sellers, sanitize, artistHandler.UpdateProfile)

	// Orders and addresses (any authenticated user, scoped to self)
	api.Post("/orders", protected, orderHandler.Checkout)
	api.Get("/orders", protected, orderHandler.List)
	api.Get("/shipping-addresses", protected, orderHandler.ListAddresses)
	api.Post("/shipping-addresses", protected, orderHandler.CreateAddress)

	// Admin
	admin := api.Group("/admin", protected, middleware.RequireRoles(models.RoleAdmin))
	admin.Get("/dashboard", adminHandler.Dashboard)
}

// rateLimit is a per-IP sliding window of max requests per minute. A
// non-positive max disables limiting.
func rateLimit(max int) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse(
				dto.CodeRateLimited, "Too many requests, please try again later", nil,
			))
		},
	})
}
