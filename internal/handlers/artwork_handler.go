package handlers

import (
	"github.com/beauxarts/marketplace-api/internal/catalog"
	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ArtworkHandler struct {
	catalog *services.CatalogService
}

func NewArtworkHandler(catalog *services.CatalogService) *ArtworkHandler {
	return &ArtworkHandler{catalog: catalog}
}

// List serves GET /api/artworks. Unparsable query values fall back to their
// defaults instead of failing the request.
func (h *ArtworkHandler) List(c *fiber.Ctx) error {
	criteria := catalog.FromQuery(func(key string) string { return c.Query(key) })

	res, err := h.catalog.ListArtworks(c.UserContext(), criteria)
	if err != nil {
		return serviceError(c, "artworks.list", err, "Error fetching artworks")
	}
	return respond(c, fiber.StatusOK, "Artworks retrieved successfully", res)
}

func (h *ArtworkHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, dto.CodeNotFound, "Artwork not found", nil)
	}

	artwork, err := h.catalog.GetArtwork(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "artworks.get", err, "Error fetching artwork")
	}
	return respond(c, fiber.StatusOK, "Artwork retrieved successfully", artwork)
}

func (h *ArtworkHandler) Create(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.CreateArtworkRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	artwork, err := h.catalog.CreateArtwork(c.UserContext(), who, &req)
	if err != nil {
		return serviceError(c, "artworks.create", err, "Error creating artwork")
	}
	return respond(c, fiber.StatusCreated, "Artwork created successfully", artwork)
}

func (h *ArtworkHandler) Update(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, dto.CodeNotFound, "Artwork not found", nil)
	}
	var req dto.UpdateArtworkRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	artwork, err := h.catalog.UpdateArtwork(c.UserContext(), who, id, &req)
	if err != nil {
		return serviceError(c, "artworks.update", err, "Error updating artwork")
	}
	return respond(c, fiber.StatusOK, "Artwork updated successfully", artwork)
}

func (h *ArtworkHandler) Delete(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, dto.CodeNotFound, "Artwork not found", nil)
	}

	if err := h.catalog.DeleteArtwork(c.UserContext(), who, id); err != nil {
		return serviceError(c, "artworks.delete", err, "Error deleting artwork")
	}
	return respond(c, fiber.StatusOK, "Artwork deleted successfully", nil)
}

func (h *ArtworkHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(c.UserContext())
	if err != nil {
		return serviceError(c, "categories.list", err, "Error fetching categories")
	}
	return respond(c, fiber.StatusOK, "Categories retrieved successfully", categories)
}
