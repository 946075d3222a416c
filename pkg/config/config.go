package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	StorageBucket   string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailFromName string

	// SecurityInbox receives forwarded contact messages.
	SecurityInbox string

	// AdminEmails is the fixed allow-list for admin logins.
	AdminEmails []string
	// AllowedEmailDomain is the institutional domain regular users must belong to.
	AllowedEmailDomain string
	// AllowedEmails are individual non-institutional addresses permitted as users.
	AllowedEmails []string

	// ClaimWindow is how long an unverified found-item claim stays alive.
	ClaimWindow time.Duration
	// SweepInterval is how often due claim deadlines are evaluated.
	SweepInterval time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", ""),
		MailFromName: getEnv("MAIL_FROM_NAME", "Campus Lost and Found"),

		SecurityInbox: getEnv("SECURITY_INBOX", ""),

		AdminEmails:        getEnvAsSlice("ADMIN_EMAILS"),
		AllowedEmailDomain: getEnv("ALLOWED_EMAIL_DOMAIN", ""),
		AllowedEmails:      getEnvAsSlice("ALLOWED_EMAILS"),

		ClaimWindow:   getEnvAsDuration("CLAIM_WINDOW", 48*time.Hour),
		SweepInterval: getEnvAsDuration("SWEEP_INTERVAL", 10*time.Minute),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
