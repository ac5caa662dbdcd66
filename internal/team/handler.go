package team

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aquabluegroup/fishwaale-backend/internal/storage"
)

type Handler struct {
	service *Service
	store   storage.Store
}

func NewHandler(s *Service, store storage.Store) *Handler {
	return &Handler{service: s, store: store}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/team", h.getMembers)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/team", h.createMember)
	router.Put("/team/:id", h.updateMember)
	router.Delete("/team/:id", h.deleteMember)
}

func (h *Handler) getMembers(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// parsePayload accepts JSON or a multipart form with an optional avatar
// file, which replaces imageUrl with the uploaded file's public URL.
func (h *Handler) parsePayload(c *fiber.Ctx) (*Member, error) {
	m := new(Member)
	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		m.Name = c.FormValue("name")
		m.Role = c.FormValue("role")
		m.ImageURL = c.FormValue("imageUrl")
		m.LinkedinURL = c.FormValue("linkedinUrl")
		if file, err := c.FormFile("avatar"); err == nil {
			url, err := h.store.Save(file, storage.BucketTeamAvatars)
			if err != nil {
				return nil, err
			}
			m.ImageURL = url
		}
		return m, nil
	}

	if err := c.BodyParser(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (h *Handler) createMember(c *fiber.Ctx) error {
	m, err := h.parsePayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if m.Name == "" || m.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name and role are required"})
	}

	m.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	created, err := h.service.Create(*m)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateMember(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	m, err := h.parsePayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if m.Name == "" || m.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name and role are required"})
	}

	updated, err := h.service.Update(id, *m)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Team member not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteMember(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Team member not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendString("Team member deleted")
}
