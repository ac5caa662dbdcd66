package config

import "os"

// Config holds environment-driven configuration. Optional integrations
// (email dispatch, geo reference data) stay disabled when their variables
// are absent; only the database URL is required to boot.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	// object storage
	UploadDir     string
	PublicBaseURL string

	// outbound email dispatch (EmailJS-compatible API)
	EmailServiceID         string
	EmailConfirmTemplateID string
	EmailRejectTemplateID  string
	EmailPublicKey         string
	EmailAPIURL            string

	// public states/districts reference data
	GeoDataURL string

	// chatbot Q&A data file
	ChatbotDataPath string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:                   getEnv("FISHWAALE_ADDR", ":8080"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		UploadDir:              getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL:          getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		EmailServiceID:         os.Getenv("EMAILJS_SERVICE_ID"),
		EmailConfirmTemplateID: os.Getenv("EMAILJS_CONFIRM_TEMPLATE_ID"),
		EmailRejectTemplateID:  os.Getenv("EMAILJS_REJECT_TEMPLATE_ID"),
		EmailPublicKey:         os.Getenv("EMAILJS_PUBLIC_KEY"),
		EmailAPIURL:            getEnv("EMAILJS_API_URL", "https://api.emailjs.com"),
		GeoDataURL:             getEnv("GEO_DATA_URL", "https://raw.githubusercontent.com/iaseth/data-for-india/master/data/readable/districts.json"),
		ChatbotDataPath:        getEnv("CHATBOT_DATA_PATH", "./qa-data.json"),
	}
}

// EmailConfigured reports whether every email-dispatch setting is present.
// A missing value disables dispatch for the dependent feature instead of
// failing startup.
func (c Config) EmailConfigured() bool {
	return c.EmailServiceID != "" && c.EmailConfirmTemplateID != "" &&
		c.EmailRejectTemplateID != "" && c.EmailPublicKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
