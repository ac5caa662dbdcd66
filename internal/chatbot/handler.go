package chatbot

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

type askRequest struct {
	Question string `json:"question"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/chatbot/questions", h.getQuestions)
	app.Post("/api/v1/chatbot/ask", h.ask)
}

func (h *Handler) getQuestions(c *fiber.Ctx) error {
	return c.JSON(h.service.Questions())
}

func (h *Handler) ask(c *fiber.Ctx) error {
	payload := new(askRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	answer := h.service.Answer(payload.Question)
	if answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "question cannot be empty"})
	}

	return c.JSON(fiber.Map{
		"question": payload.Question,
		"answer":   answer,
	})
}
