package guides

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wolf6905/CCG3/src/core/helpers"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// GetGuides serves the static guide catalog.
func (h *Handler) GetGuides(c *fiber.Ctx) error {
	return helpers.HandleSuccess(c, fiber.StatusOK, "Guides fetched successfully", Catalog)
}
