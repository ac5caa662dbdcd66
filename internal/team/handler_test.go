package team

import (
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type nopStore struct{}

func (nopStore) Save(file *multipart.FileHeader, bucket string) (string, error) {
	return "http://localhost:8080/uploads/" + bucket + "/" + file.Filename, nil
}

func makeApp(repo Repository) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(repo), nopStore{})
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app.Group("/api/v1/admin"))
	return app
}

func TestGetMembers(t *testing.T) {
	repo := NewInMemoryRepository([]Member{
		{ID: 1, Name: "P Deka", Role: "Founder"},
		{ID: 2, Name: "R Das", Role: "Operations"},
	})
	app := makeApp(repo)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/team", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var members []Member
	if err := json.NewDecoder(res.Body).Decode(&members); err != nil {
		t.Fatal(err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
}

func TestCreateMember_RequiresNameAndRole(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil))

	req := httptest.NewRequest("POST", "/api/v1/admin/team", strings.NewReader(`{"name":"P Deka"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestCreateMember_JSON(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := makeApp(repo)

	req := httptest.NewRequest("POST", "/api/v1/admin/team",
		strings.NewReader(`{"name":"P Deka","role":"Founder","linkedinUrl":"https://linkedin.com/in/pdeka"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created Member
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 || created.CreatedAt == "" {
		t.Fatalf("expected id and createdAt to be set, got %+v", created)
	}
}
