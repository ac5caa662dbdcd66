package category

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

type subCategoryRequest struct {
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories", h.getTree)
	app.Get("/api/v1/sub-categories", h.getSubCategories)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/sub-categories", h.createSubCategory)
	router.Put("/sub-categories/:id", h.updateSubCategory)
	router.Delete("/sub-categories/:id", h.deleteSubCategory)
}

func (h *Handler) getTree(c *fiber.Ctx) error {
	return c.JSON(h.service.Tree())
}

func (h *Handler) getSubCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.ListSubCategories())
}

func validateSubCategoryPayload(p *subCategoryRequest) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.CategoryID <= 0 {
		errs["categoryId"] = "categoryId is required"
	}
	return errs
}

func (h *Handler) createSubCategory(c *fiber.Ctx) error {
	payload := new(subCategoryRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateSubCategoryPayload(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.CreateSubCategory(SubCategory{
		Name:       payload.Name,
		CategoryID: payload.CategoryID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateSubCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	payload := new(subCategoryRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateSubCategoryPayload(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.UpdateSubCategory(id, SubCategory{
		Name:       payload.Name,
		CategoryID: payload.CategoryID,
	})
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Sub-category not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteSubCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if err := h.service.DeleteSubCategory(id); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Sub-category not found")
		case ErrInUse:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "sub-category still has products assigned to it"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.SendString("Sub-category deleted")
}
