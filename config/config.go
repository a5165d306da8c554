package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	FrontendURL    string
	ResumeDataPath string
	// Postmark Configuration
	PostmarkServerToken  string
	PostmarkAccountToken string
	// Contact form addressing
	ContactFromEmail string // Verified sender address, overridable
	ContactToEmail   string // Operator recipient, overridable
	// Development
	MailDevDir string // When set (and no server token), emails are written here instead of sent
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		ResumeDataPath: getEnv("RESUME_DATA_PATH", "data/resume.json"),
		// Postmark Configuration
		PostmarkServerToken:  getEnv("POSTMARK_SERVER_TOKEN", ""),
		PostmarkAccountToken: getEnv("POSTMARK_ACCOUNT_TOKEN", ""),
		// Contact form addressing
		ContactFromEmail: getEnv("CONTACT_FROM_EMAIL", "contact@danielmcgrath.dev"),
		ContactToEmail:   getEnv("CONTACT_TO_EMAIL", "danmcgrath1035@gmail.com"),
		// Development
		MailDevDir: getEnv("MAIL_DEV_DIR", "tmp/outbox"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
