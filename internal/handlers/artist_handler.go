package handlers

import (
	"github.com/beauxarts/marketplace-api/internal/catalog"
	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ArtistHandler struct {
	artists *services.ArtistService
}

func NewArtistHandler(artists *services.ArtistService) *ArtistHandler {
	return &ArtistHandler{artists: artists}
}

// List serves both the lightweight mode=list menu and the paginated directory.
func (h *ArtistHandler) List(c *fiber.Ctx) error {
	if c.Query("mode") == "list" {
		top, err := h.artists.ListTop(c.UserContext())
		if err != nil {
			return serviceError(c, "artists.list", err, "Error fetching artists")
		}
		return respond(c, fiber.StatusOK, "Artists retrieved successfully", top)
	}

	q := catalog.FromQuery(func(key string) string { return c.Query(key) })
	res, err := h.artists.Directory(c.UserContext(), q.Page(), q.Limit(), q.Search())
	if err != nil {
		return serviceError(c, "artists.directory", err, "Error fetching artists")
	}
	return respond(c, fiber.StatusOK, "Artists retrieved successfully", res)
}

func (h *ArtistHandler) Apply(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.ApplyArtistRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	res, err := h.artists.Apply(c.UserContext(), who, &req)
	if err != nil {
		return serviceError(c, "artists.apply", err, "Error applying for artist account")
	}
	return respond(c, fiber.StatusCreated, "Artist application successful", res)
}

func (h *ArtistHandler) Dashboard(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	res, err := h.artists.Dashboard(c.UserContext(), who)
	if err != nil {
		return serviceError(c, "artists.dashboard", err, "Error loading dashboard")
	}
	return respond(c, fiber.StatusOK, "Dashboard retrieved successfully", res)
}

func (h *ArtistHandler) GetProfile(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	res, err := h.artists.GetProfile(c.UserContext(), who)
	if err != nil {
		return serviceError(c, "artists.profile", err, "Error fetching artist profile")
	}
	return respond(c, fiber.StatusOK, "Artist profile retrieved successfully", res)
}

func (h *ArtistHandler) UpdateProfile(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.UpdateArtistProfileRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	res, err := h.artists.UpdateProfile(c.UserContext(), who, &req)
	if err != nil {
		return serviceError(c, "artists.profile.update", err, "Error updating artist profile")
	}
	return respond(c, fiber.StatusOK, "Artist profile updated successfully", res)
}
