package order

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aquabluegroup/fishwaale-backend/internal/mailer"
	"github.com/aquabluegroup/fishwaale-backend/internal/user"
)

type Handler struct {
	service *Service
	mail    mailer.Sender
	logger  *zap.Logger
}

func NewHandler(s *Service, mail mailer.Sender, logger *zap.Logger) *Handler {
	return &Handler{service: s, mail: mail, logger: logger}
}

// RegisterProtectedRoutes requires an authenticated session: the order
// modal redirects signed-out visitors to signup, which the 401 from the
// JWT middleware drives.
func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.createOrder)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/orders", h.getOrders)
	router.Get("/orders/:id", h.getOrder)
	router.Post("/orders/:id/status", h.updateStatus)
	router.Delete("/orders/:id", h.deleteOrder)
}

type createOrderRequest struct {
	ProductID   int    `json:"productId"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

func validateOrderPayload(p *createOrderRequest) map[string]string {
	errs := map[string]string{}
	if p.ProductID <= 0 {
		errs["productId"] = "productId is required"
	}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Phone == "" {
		errs["phone"] = "phone is required"
	}
	if p.Email == "" {
		errs["email"] = "email is required"
	}
	if p.Address == "" {
		errs["address"] = "address is required"
	}
	if p.Quantity < 1 {
		errs["quantity"] = "quantity must be at least 1"
	}
	return errs
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	if _, err := user.GetUserIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateOrderPayload(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(Order{
		ProductID:   payload.ProductID,
		Name:        payload.Name,
		Phone:       payload.Phone,
		Email:       payload.Email,
		Address:     payload.Address,
		Quantity:    payload.Quantity,
		Description: payload.Description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	f := Filter{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	}
	if v, err := strconv.Atoi(c.Query("categoryId", "0")); err == nil {
		f.CategoryID = v
	}
	return c.JSON(h.service.List(f))
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	ord, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Order not found")
	}
	return c.JSON(ord)
}

type statusRequest struct {
	Status string `json:"status"`
}

// updateStatus commits the transition first, then fires the notification
// email. A send failure (including missing configuration) is reported in
// the response but never undoes the status change.
func (h *Handler) updateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Transition(id, payload.Status)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Order not found")
		case ErrInvalidTransition:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	var emailError string
	if h.mail != nil {
		sendErr := h.mail.SendOrderStatus(updated.Status == StatusDone, map[string]string{
			"to_name":      updated.Name,
			"to_email":     updated.Email,
			"product_name": updated.ProductName,
			"order_id":     strconv.Itoa(updated.ID),
			"status":       statusLabel(updated.Status),
		})
		if sendErr != nil {
			h.logger.Warn("order status email not sent",
				zap.Int("order_id", updated.ID),
				zap.Error(sendErr),
			)
			emailError = sendErr.Error()
		}
	}

	resp := fiber.Map{"order": updated}
	if emailError != "" {
		resp["emailError"] = emailError
	}
	return c.JSON(resp)
}

func statusLabel(status string) string {
	if status == StatusDone {
		return "confirmed"
	}
	return status
}

func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).SendString("Order not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendString("Order deleted")
}
