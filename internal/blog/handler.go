package blog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/blogs", h.getPublished)
	app.Get("/api/v1/blogs/categories", h.getCategories)
	app.Get("/api/v1/blogs/:slug", h.getBySlug)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/blogs", h.getAll)
	router.Post("/blogs", h.createBlog)
	router.Put("/blogs/:id", h.updateBlog)
	router.Delete("/blogs/:id", h.deleteBlog)

	router.Post("/blog-categories", h.createCategory)
	router.Put("/blog-categories/:id", h.updateCategory)
	router.Delete("/blog-categories/:id", h.deleteCategory)
}

func (h *Handler) getPublished(c *fiber.Ctx) error {
	f := Filter{Query: c.Query("q")}
	if v, err := strconv.Atoi(c.Query("categoryId", "0")); err == nil {
		f.CategoryID = v
	}
	return c.JSON(h.service.ListPublished(f))
}

func (h *Handler) getBySlug(c *fiber.Ctx) error {
	b, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Blog post not found"})
	}
	return c.JSON(b)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.ListCategories())
}

func (h *Handler) getAll(c *fiber.Ctx) error {
	return c.JSON(h.service.ListAll())
}

func validateBlogPayload(b *Blog) map[string]string {
	errs := map[string]string{}
	if b.Title == "" {
		errs["title"] = "title is required"
	}
	if b.Content == "" {
		errs["content"] = "content is required"
	}
	switch b.Status {
	case StatusDraft, StatusPublished, StatusArchived:
	default:
		errs["status"] = "status must be draft, published or archived"
	}
	return errs
}

func (h *Handler) createBlog(c *fiber.Ctx) error {
	b := new(Blog)
	if err := c.BodyParser(b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if b.Status == "" {
		b.Status = StatusDraft
	}
	if ves := validateBlogPayload(b); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(*b)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateBlog(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	b := new(Blog)
	if err := c.BodyParser(b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateBlogPayload(b); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(id, *b)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Blog post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteBlog(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Blog post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendString("Blog post deleted")
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	cat := new(Category)
	if err := c.BodyParser(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if cat.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": map[string]string{"name": "name is required"}})
	}

	created, err := h.service.CreateCategory(*cat)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	cat := new(Category)
	if err := c.BodyParser(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.UpdateCategory(id, *cat)
	if err != nil {
		if err == ErrCategoryNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Blog category not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.DeleteCategory(id); err != nil {
		if err == ErrCategoryNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Blog category not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendString("Blog category deleted")
}
