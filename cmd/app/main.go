package main

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aquabluegroup/fishwaale-backend/internal/blog"
	"github.com/aquabluegroup/fishwaale-backend/internal/cart"
	"github.com/aquabluegroup/fishwaale-backend/internal/category"
	"github.com/aquabluegroup/fishwaale-backend/internal/chatbot"
	"github.com/aquabluegroup/fishwaale-backend/internal/config"
	"github.com/aquabluegroup/fishwaale-backend/internal/geo"
	"github.com/aquabluegroup/fishwaale-backend/internal/mailer"
	"github.com/aquabluegroup/fishwaale-backend/internal/order"
	"github.com/aquabluegroup/fishwaale-backend/internal/product"
	"github.com/aquabluegroup/fishwaale-backend/internal/storage"
	"github.com/aquabluegroup/fishwaale-backend/internal/submission"
	"github.com/aquabluegroup/fishwaale-backend/internal/team"
	"github.com/aquabluegroup/fishwaale-backend/internal/testimonial"
	"github.com/aquabluegroup/fishwaale-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	if err := bootstrapSchema(db); err != nil {
		logger.Fatal("schema bootstrap failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{BodyLimit: 20 * 1024 * 1024})
	setupCORS(app)
	app.Use(requestLogger(logger))

	files := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)

	// user service is built first; other handlers lean on its JWT helpers
	userHandler := user.NewHandler(user.NewService(user.NewPostgresRepository(db)))

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService, files)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))
	blogHandler := blog.NewHandler(blog.NewService(blog.NewPostgresRepository(db), logger))
	teamHandler := team.NewHandler(team.NewService(team.NewPostgresRepository(db)), files)
	testimonialHandler := testimonial.NewHandler(testimonial.NewService(testimonial.NewPostgresRepository(db)))
	submissionHandler := submission.NewHandler(submission.NewService(submission.NewPostgresRepository(db), files))
	geoHandler := geo.NewHandler(geo.NewClient(cfg.GeoDataURL, logger))
	cartHandler := cart.NewHandler(cart.NewService(cart.NewInMemoryRepository(), productService))

	mail := mailer.NewClient(cfg.EmailAPIURL, cfg.EmailServiceID, cfg.EmailConfirmTemplateID,
		cfg.EmailRejectTemplateID, cfg.EmailPublicKey, logger)
	if !cfg.EmailConfigured() {
		logger.Warn("email dispatch disabled, EMAILJS_* settings incomplete")
	}
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db)), mail, logger)

	chatbotService, err := chatbot.LoadService(cfg.ChatbotDataPath)
	if err != nil {
		logger.Warn("chatbot data unavailable, answering with fallback only",
			zap.String("path", cfg.ChatbotDataPath), zap.Error(err))
		chatbotService = chatbot.NewService(nil)
	}
	chatbotHandler := chatbot.NewHandler(chatbotService)

	// public surface: everything the website renders without signing in
	userHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	blogHandler.RegisterPublicRoutes(app)
	teamHandler.RegisterPublicRoutes(app)
	testimonialHandler.RegisterPublicRoutes(app)
	submissionHandler.RegisterPublicRoutes(app)
	geoHandler.RegisterPublicRoutes(app)
	chatbotHandler.RegisterPublicRoutes(app)

	app.Static("/uploads", cfg.UploadDir)

	// routes registered from here on require a valid token
	app.Use(user.AuthMiddleware(cfg.JWTSecret))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	submissionHandler.RegisterProtectedRoutes(app)

	// console endpoints additionally require the is_admin claim
	admin := app.Group("/api/v1/admin", user.RequireAdmin)
	categoryHandler.RegisterAdminRoutes(admin)
	productHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	blogHandler.RegisterAdminRoutes(admin)
	teamHandler.RegisterAdminRoutes(admin)
	submissionHandler.RegisterAdminRoutes(admin)

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
		)
		return err
	}
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

// bootstrapSchema creates missing tables on startup so a fresh database is
// usable without a separate migration step.
func bootstrapSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT,
			last_name TEXT,
			phone TEXT,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sub_categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category_id INT NOT NULL REFERENCES categories(id)
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			image_url TEXT,
			price NUMERIC NOT NULL DEFAULT 0,
			discount_price NUMERIC,
			discount_percentage NUMERIC,
			features TEXT[],
			sub_category_id INT NOT NULL REFERENCES sub_categories(id),
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL REFERENCES products(id),
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT,
			address TEXT,
			quantity INT NOT NULL DEFAULT 1,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS blog_categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS blogs (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT,
			excerpt TEXT,
			featured_image_url TEXT,
			author TEXT,
			status TEXT NOT NULL DEFAULT 'draft',
			slug TEXT UNIQUE NOT NULL,
			tags TEXT[],
			view_count INT NOT NULL DEFAULT 0,
			category_id INT REFERENCES blog_categories(id),
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS team_members (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			role TEXT,
			image_url TEXT,
			linkedin_url TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS testimonials (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			location TEXT,
			quote TEXT NOT NULL,
			image_url TEXT,
			rating INT NOT NULL DEFAULT 5
		)`,
		`CREATE TABLE IF NOT EXISTS contact_us (
			id SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			email TEXT NOT NULL,
			description TEXT,
			file_url TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS join_us (
			id SERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT,
			state TEXT NOT NULL,
			district TEXT NOT NULL,
			area TEXT,
			file_url TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS tenant_down_submissions (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			tenant_url TEXT NOT NULL,
			description TEXT,
			created_at TEXT
		)`,
		// view counter lives in the database so concurrent reads never lose
		// an increment
		`CREATE OR REPLACE FUNCTION increment_view_count(blog_id INT) RETURNS VOID AS $$
			UPDATE blogs SET view_count = view_count + 1 WHERE id = blog_id
		$$ LANGUAGE sql`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
