package geo

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/geo/states", h.getStates)
	app.Get("/api/v1/geo/districts", h.getDistricts)
}

func (h *Handler) getStates(c *fiber.Ctx) error {
	states, err := h.client.States()
	if err != nil {
		// location dropdowns render empty on failure, the form still works
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "could not load states"})
	}
	return c.JSON(states)
}

func (h *Handler) getDistricts(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "state is required"})
	}

	districts, err := h.client.Districts(state)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "could not load districts"})
	}
	return c.JSON(districts)
}
