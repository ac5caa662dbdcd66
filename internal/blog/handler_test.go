package blog

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func makeApp(repo Repository) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(repo, zap.NewNop()))
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app.Group("/api/v1/admin"))
	return app
}

func TestGetBySlug_NotFound(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil, nil))

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/blogs/no-such-post", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestCategoriesRouteWinsOverSlug(t *testing.T) {
	repo := NewInMemoryRepository(nil, []Category{{ID: 1, Name: "Farming", Slug: "farming"}})
	app := makeApp(repo)

	// "/blogs/categories" must route to the category list, not be
	// interpreted as a post slug
	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/blogs/categories", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var categories []Category
	if err := json.NewDecoder(res.Body).Decode(&categories); err != nil {
		t.Fatal(err)
	}
	if len(categories) != 1 || categories[0].Slug != "farming" {
		t.Fatalf("unexpected payload %v", categories)
	}
}

func TestGetPublished_FilterByCategory(t *testing.T) {
	catID := 5
	repo := NewInMemoryRepository([]Blog{
		{ID: 1, Title: "A", Slug: "a", Status: StatusPublished, CategoryID: &catID},
		{ID: 2, Title: "B", Slug: "b", Status: StatusPublished},
	}, nil)
	app := makeApp(repo)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/blogs?categoryId=5", nil))
	if err != nil {
		t.Fatal(err)
	}

	var posts []Blog
	if err := json.NewDecoder(res.Body).Decode(&posts); err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].Slug != "a" {
		t.Fatalf("expected only post a, got %v", posts)
	}
}
