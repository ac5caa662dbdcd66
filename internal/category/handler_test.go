package category

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp(repo Repository) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(repo))
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app.Group("/api/v1/admin"))
	return app
}

func TestGetTree_Nested(t *testing.T) {
	repo := NewInMemoryRepository(
		[]Category{{ID: 10, Name: "Feed"}, {ID: 20, Name: "Equipment"}},
		[]SubCategory{
			{ID: 1, Name: "Fish Feed", CategoryID: 10},
			{ID: 2, Name: "Aeration Systems", CategoryID: 20},
			{ID: 3, Name: "Biofloc Tanks", CategoryID: 20},
		},
	)
	app := makeApp(repo)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/categories", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var tree []Category
	if err := json.NewDecoder(res.Body).Decode(&tree); err != nil {
		t.Fatal(err)
	}
	if len(tree) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(tree))
	}
	if len(tree[1].SubCategories) != 2 {
		t.Fatalf("expected 2 sub-categories under Equipment, got %d", len(tree[1].SubCategories))
	}
	if tree[1].SubCategories[0].Slug != "aeration-systems" {
		t.Fatalf("unexpected slug %q", tree[1].SubCategories[0].Slug)
	}
}

func TestGetTree_EmptyIsStillOK(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil, nil))

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/categories", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var tree []Category
	if err := json.NewDecoder(res.Body).Decode(&tree); err != nil {
		t.Fatal(err)
	}
	if tree == nil || len(tree) != 0 {
		t.Fatalf("expected empty array, got %v", tree)
	}
}

func TestDeleteSubCategory_InUse(t *testing.T) {
	repo := NewInMemoryRepository(
		[]Category{{ID: 10, Name: "Feed"}},
		[]SubCategory{{ID: 1, Name: "Fish Feed", CategoryID: 10}},
	)
	repo.MarkReferenced(1)
	app := makeApp(repo)

	res, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/admin/sub-categories/1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", res.StatusCode)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Aeration Systems":  "aeration-systems",
		"Fish   Feed":       "fish-feed",
		"  Biofloc Tanks  ": "biofloc-tanks",
		"RAS":               "ras",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
