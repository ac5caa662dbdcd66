package user

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func withClaims(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		if c.Get("X-User-ID") != "" {
			claims := jwt.MapClaims{
				"user_id":  float64(7),
				"is_admin": c.Get("X-Admin") == "1",
			}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
}

func TestSignUp_ThenSignIn(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(nil))).RegisterPublicRoutes(app)

	signUp := httptest.NewRequest("POST", "/api/v1/sign-up",
		strings.NewReader(`{"email":"a@b.c","password":"hunter22","firstName":"A"}`))
	signUp.Header.Set("Content-Type", "application/json")

	res, err := app.Test(signUp)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created User
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.Password != "" {
		t.Fatal("password leaked in signup response")
	}

	signIn := httptest.NewRequest("POST", "/api/v1/sign-in",
		strings.NewReader(`{"email":"a@b.c","password":"hunter22"}`))
	signIn.Header.Set("Content-Type", "application/json")

	res, err = app.Test(signIn)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Token == "" {
		t.Fatal("expected a token")
	}
	if body.User.Password != "" {
		t.Fatal("password leaked in sign-in response")
	}
}

func TestSignIn_WrongPassword(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo)
	if _, err := svc.Register(User{Email: "a@b.c", Password: "right", FirstName: "A"}); err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	NewHandler(svc).RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/sign-in",
		strings.NewReader(`{"email":"a@b.c","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

func TestAuthMiddleware_TokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := NewInMemoryRepository(nil)
	h := NewHandler(NewService(repo))

	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(AuthMiddleware("test-secret"))
	h.RegisterProtectedRoutes(app)

	signUp := httptest.NewRequest("POST", "/api/v1/sign-up",
		strings.NewReader(`{"email":"a@b.c","password":"hunter22","firstName":"A"}`))
	signUp.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(signUp); err != nil {
		t.Fatal(err)
	}

	signIn := httptest.NewRequest("POST", "/api/v1/sign-in",
		strings.NewReader(`{"email":"a@b.c","password":"hunter22"}`))
	signIn.Header.Set("Content-Type", "application/json")

	res, err := app.Test(signIn)
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Token == "" {
		t.Fatal("expected a token")
	}

	// no token at all is a 401, not jwtware's 400
	res, err = app.Test(httptest.NewRequest("GET", "/api/v1/profile", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.StatusCode)
	}

	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	res, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with token, got %d", res.StatusCode)
	}
}

func TestRequireAdmin(t *testing.T) {
	app := fiber.New()
	withClaims(app)
	admin := app.Group("/api/v1/admin", RequireAdmin)
	admin.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	// no claims at all
	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/admin/ping", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 without claims, got %d", res.StatusCode)
	}

	// signed in but not admin
	req := httptest.NewRequest("GET", "/api/v1/admin/ping", nil)
	req.Header.Set("X-User-ID", "7")
	res, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", res.StatusCode)
	}

	// admin claim present
	req = httptest.NewRequest("GET", "/api/v1/admin/ping", nil)
	req.Header.Set("X-User-ID", "7")
	req.Header.Set("X-Admin", "1")
	res, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", res.StatusCode)
	}
}

func TestProfileUpdate_Partial(t *testing.T) {
	repo := NewInMemoryRepository([]User{{ID: 7, Email: "a@b.c", FirstName: "A", LastName: "B", Phone: "111"}})
	app := fiber.New()
	withClaims(app)
	NewHandler(NewService(repo)).RegisterProtectedRoutes(app)

	req := httptest.NewRequest("PATCH", "/api/v1/profile", strings.NewReader(`{"phone":"222"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")

	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var updated User
	if err := json.NewDecoder(res.Body).Decode(&updated); err != nil {
		t.Fatal(err)
	}
	if updated.Phone != "222" {
		t.Fatalf("expected phone updated, got %q", updated.Phone)
	}
	// untouched fields survive a partial update
	if updated.FirstName != "A" || updated.LastName != "B" {
		t.Fatalf("partial update clobbered other fields: %+v", updated)
	}
}
