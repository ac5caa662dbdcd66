package submission

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aquabluegroup/fishwaale-backend/internal/user"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/contact", h.submitContact)
	app.Post("/api/v1/tenant-down", h.submitTenantDown)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/join", h.submitJoin)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/contact", h.listContact)
	router.Delete("/contact/:id<[0-9]+>", h.deleteContact)
	router.Get("/join", h.listJoin)
	router.Delete("/join/:id<[0-9]+>", h.deleteJoin)
	router.Get("/tenant-down", h.listTenantDown)
	router.Delete("/tenant-down/:id<[0-9]+>", h.deleteTenantDown)
}

func (h *Handler) submitContact(c *fiber.Ctx) error {
	sub := ContactSubmission{
		Question:    strings.TrimSpace(c.FormValue("question")),
		Email:       strings.TrimSpace(c.FormValue("email")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}

	fieldErrors := map[string]string{}
	if sub.Question == "" {
		fieldErrors["question"] = "question is required"
	}
	if sub.Email == "" {
		fieldErrors["email"] = "email is required"
	} else if !strings.Contains(sub.Email, "@") {
		fieldErrors["email"] = "email is invalid"
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
	}

	// Attachment is optional.
	file, _ := c.FormFile("file")

	created, err := h.service.SubmitContact(sub, file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "cannot submit contact request"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) submitJoin(c *fiber.Ctx) error {
	if _, err := user.GetUserIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "sign in to apply"})
	}

	sub := JoinSubmission{
		FullName: strings.TrimSpace(c.FormValue("fullName")),
		Phone:    strings.TrimSpace(c.FormValue("phone")),
		Email:    strings.TrimSpace(c.FormValue("email")),
		State:    strings.TrimSpace(c.FormValue("state")),
		District: strings.TrimSpace(c.FormValue("district")),
		Area:     strings.TrimSpace(c.FormValue("area")),
	}

	fieldErrors := map[string]string{}
	if sub.FullName == "" {
		fieldErrors["fullName"] = "full name is required"
	}
	if sub.Phone == "" {
		fieldErrors["phone"] = "phone is required"
	}
	if sub.State == "" {
		fieldErrors["state"] = "state is required"
	}
	if sub.District == "" {
		fieldErrors["district"] = "district is required"
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
	}

	resume, _ := c.FormFile("resume")

	created, err := h.service.SubmitJoin(sub, resume)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "cannot submit application"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) submitTenantDown(c *fiber.Ctx) error {
	var sub TenantDownSubmission
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.TenantURL = strings.TrimSpace(sub.TenantURL)

	fieldErrors := map[string]string{}
	if sub.Name == "" {
		fieldErrors["name"] = "name is required"
	}
	if sub.Email == "" {
		fieldErrors["email"] = "email is required"
	}
	if sub.TenantURL == "" {
		fieldErrors["tenantUrl"] = "tenant URL is required"
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
	}

	created, err := h.service.SubmitTenantDown(sub)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "cannot submit report"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listContact(c *fiber.Ctx) error {
	items, err := h.service.ListContact()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "cannot fetch contact requests"})
	}
	return c.JSON(items)
}

func (h *Handler) deleteContact(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid submission id"})
	}
	if err := h.service.DeleteContact(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "submission not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "cannot delete submission"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listJoin(c *fiber.Ctx) error {
	items, err := h.service.ListJoin()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "cannot fetch applications"})
	}
	return c.JSON(items)
}

func (h *Handler) deleteJoin(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid submission id"})
	}
	if err := h.service.DeleteJoin(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "submission not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "cannot delete submission"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listTenantDown(c *fiber.Ctx) error {
	items, err := h.service.ListTenantDown()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "cannot fetch reports"})
	}
	return c.JSON(items)
}

func (h *Handler) deleteTenantDown(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid submission id"})
	}
	if err := h.service.DeleteTenantDown(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "submission not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "cannot delete submission"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
