package order

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/aquabluegroup/fishwaale-backend/internal/user"
)

// fakeSender records dispatches and can be told to fail.
type fakeSender struct {
	calls     int
	confirmed bool
	fail      bool
}

func (f *fakeSender) SendOrderStatus(confirmed bool, params map[string]string) error {
	f.calls++
	f.confirmed = confirmed
	if f.fail {
		return errors.New("smtp relay down")
	}
	return nil
}

// claims are normally placed by the JWT middleware; tests inject them from
// a header instead.
func makeApp(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				claims := jwt.MapClaims{"user_id": id, "is_admin": c.Get("X-Admin") == "1"}
				c.Locals("user", &jwt.Token{Claims: claims})
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	h.RegisterAdminRoutes(app.Group("/api/v1/admin"))
	return app
}

func TestCreateOrder_Unauthenticated(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	h := NewHandler(NewService(repo), &fakeSender{}, zap.NewNop())
	app := makeApp(h)

	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(`{"productId":1,"name":"A","phone":"1","email":"a@b.c","address":"x","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	stored, _ := repo.List(Filter{})
	if len(stored) != 0 {
		t.Fatalf("expected no insert, got %d orders", len(stored))
	}
}

// Same as above, but through the real token middleware instead of
// injected claims.
func TestCreateOrder_MissingToken(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	h := NewHandler(NewService(repo), &fakeSender{}, zap.NewNop())

	app := fiber.New()
	app.Use(user.AuthMiddleware("test-secret"))
	h.RegisterProtectedRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(`{"productId":1,"name":"A","phone":"1","email":"a@b.c","address":"x","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	stored, _ := repo.List(Filter{})
	if len(stored) != 0 {
		t.Fatalf("expected no insert, got %d orders", len(stored))
	}
}

func TestCreateOrder_Success(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	h := NewHandler(NewService(repo), &fakeSender{}, zap.NewNop())
	app := makeApp(h)

	body := `{"productId":7,"name":"Dipak","phone":"9876","email":"d@x.in","address":"Jagiroad","quantity":3}`
	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created Order
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.Status != StatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", created.Quantity)
	}

	stored, _ := repo.List(Filter{})
	if len(stored) != 1 {
		t.Fatalf("expected exactly one insert, got %d", len(stored))
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(nil)), &fakeSender{}, zap.NewNop())
	app := makeApp(h)

	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(`{"productId":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Errors["name"] == "" || body.Errors["phone"] == "" {
		t.Fatalf("expected field errors for name and phone, got %v", body.Errors)
	}
}

func TestGetOrders_FilterByCategory(t *testing.T) {
	repo := NewInMemoryRepository([]Order{
		{ID: 1, Name: "A", Status: StatusPending, CategoryID: 10, CategoryName: "Fish Feed"},
		{ID: 2, Name: "B", Status: StatusPending, CategoryID: 20, CategoryName: "Aeration Systems"},
	})
	h := NewHandler(NewService(repo), &fakeSender{}, zap.NewNop())
	app := makeApp(h)

	req := httptest.NewRequest("GET", "/api/v1/admin/orders?categoryId=20", nil)
	req.Header.Set("X-User-ID", "1")
	req.Header.Set("X-Admin", "1")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var out []Order
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("expected only the aeration order, got %v", out)
	}
}

func TestUpdateStatus_SendsEmail(t *testing.T) {
	repo := NewInMemoryRepository([]Order{{ID: 5, Name: "R", Email: "r@x.in", Status: StatusPending}})
	sender := &fakeSender{}
	h := NewHandler(NewService(repo), sender, zap.NewNop())
	app := makeApp(h)

	req := httptest.NewRequest("POST", "/api/v1/admin/orders/5/status", strings.NewReader(`{"status":"done"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	req.Header.Set("X-Admin", "1")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if sender.calls != 1 || !sender.confirmed {
		t.Fatalf("expected one confirmation send, got calls=%d confirmed=%v", sender.calls, sender.confirmed)
	}
}

func TestUpdateStatus_EmailFailureKeepsStatus(t *testing.T) {
	repo := NewInMemoryRepository([]Order{{ID: 5, Name: "R", Email: "r@x.in", Status: StatusPending}})
	sender := &fakeSender{fail: true}
	h := NewHandler(NewService(repo), sender, zap.NewNop())
	app := makeApp(h)

	req := httptest.NewRequest("POST", "/api/v1/admin/orders/5/status", strings.NewReader(`{"status":"rejected"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	req.Header.Set("X-Admin", "1")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 despite email failure, got %d", res.StatusCode)
	}

	var body struct {
		Order      Order  `json:"order"`
		EmailError string `json:"emailError"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.EmailError == "" {
		t.Fatal("expected emailError in response")
	}

	// the status change stuck
	stored, err := repo.GetByID(5)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != StatusRejected {
		t.Fatalf("expected rejected, got %q", stored.Status)
	}
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	repo := NewInMemoryRepository([]Order{{ID: 5, Status: StatusDone}})
	h := NewHandler(NewService(repo), &fakeSender{}, zap.NewNop())
	app := makeApp(h)

	req := httptest.NewRequest("POST", "/api/v1/admin/orders/5/status", strings.NewReader(`{"status":"rejected"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	req.Header.Set("X-Admin", "1")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", res.StatusCode)
	}
}
