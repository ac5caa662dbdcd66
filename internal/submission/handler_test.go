package submission

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type nopStore struct{}

func (nopStore) Save(file *multipart.FileHeader, bucket string) (string, error) {
	return "http://localhost:8080/uploads/" + bucket + "/" + file.Filename, nil
}

func makeApp(repo Repository) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if c.Get("X-User-ID") != "" {
			claims := jwt.MapClaims{"user_id": float64(7)}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})

	h := NewHandler(NewService(repo, nopStore{}))
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	h.RegisterAdminRoutes(app.Group("/api/v1/admin"))
	return app
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestSubmitContact(t *testing.T) {
	repo := NewInMemoryRepository()
	app := makeApp(repo)

	body, ct := multipartBody(t, map[string]string{
		"question":    "Do you install RAS systems?",
		"email":       "farmer@x.in",
		"description": "I have a 2 acre pond",
	})
	req := httptest.NewRequest("POST", "/api/v1/contact", body)
	req.Header.Set("Content-Type", ct)

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	stored, err := repo.ListContact()
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0].Email != "farmer@x.in" {
		t.Fatalf("unexpected stored submissions %v", stored)
	}
}

func TestSubmitContact_Validation(t *testing.T) {
	app := makeApp(NewInMemoryRepository())

	body, ct := multipartBody(t, map[string]string{"email": "not-an-email"})
	req := httptest.NewRequest("POST", "/api/v1/contact", body)
	req.Header.Set("Content-Type", ct)

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	var out struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Errors["question"] == "" || out.Errors["email"] == "" {
		t.Fatalf("expected question and email errors, got %v", out.Errors)
	}
}

func TestSubmitJoin_RequiresAuth(t *testing.T) {
	app := makeApp(NewInMemoryRepository())

	body, ct := multipartBody(t, map[string]string{
		"fullName": "R Das",
		"phone":    "9876",
		"state":    "Assam",
		"district": "Morigaon",
	})
	req := httptest.NewRequest("POST", "/api/v1/join", body)
	req.Header.Set("Content-Type", ct)

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

func TestSubmitJoin_SignedIn(t *testing.T) {
	repo := NewInMemoryRepository()
	app := makeApp(repo)

	body, ct := multipartBody(t, map[string]string{
		"fullName": "R Das",
		"phone":    "9876",
		"state":    "Assam",
		"district": "Morigaon",
		"area":     "Jagiroad",
	})
	req := httptest.NewRequest("POST", "/api/v1/join", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("X-User-ID", "7")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	stored, err := repo.ListJoin()
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0].District != "Morigaon" {
		t.Fatalf("unexpected stored applications %v", stored)
	}
}

func TestSubmitTenantDown(t *testing.T) {
	repo := NewInMemoryRepository()
	app := makeApp(repo)

	req := httptest.NewRequest("POST", "/api/v1/tenant-down",
		strings.NewReader(`{"name":"R","email":"r@x.in","tenantUrl":"https://shop.example.in"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
}

func TestDeleteTenantDown(t *testing.T) {
	repo := NewInMemoryRepository()
	app := makeApp(repo)

	req := httptest.NewRequest("POST", "/api/v1/tenant-down",
		strings.NewReader(`{"name":"R","email":"r@x.in","tenantUrl":"https://shop.example.in"}`))
	req.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}

	res, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/admin/tenant-down/1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}

	stored, err := repo.ListTenantDown()
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected report removed, got %v", stored)
	}

	res, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/admin/tenant-down/1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", res.StatusCode)
	}
}

func TestDeleteContact_NotFound(t *testing.T) {
	app := makeApp(NewInMemoryRepository())

	res, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/admin/contact/42", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
