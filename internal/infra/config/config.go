package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	DatabaseHost         string
	DatabasePort         int
	DatabaseName         string
	DatabaseUser         string
	DatabaseAccessSecret string
	LogLevel             string
	Environment          string
	CronSpecMonthly      string
	CronSpecDaily        string
	HTTPListenAddr       string
	SMTPHost             string
	SMTPPort             int
	SMTPUser             string
	SMTPPassword         string
	EmailFrom            string
	EmailTo              []string // default recipients for the full monthly summary
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.DatabaseHost = os.Getenv("DATABASE_HOST")
	if cfg.DatabaseHost == "" {
		return nil, fmt.Errorf("DATABASE_HOST is not set")
	}

	portStr := os.Getenv("DATABASE_PORT")
	if portStr == "" {
		portStr = "5432"
	}
	cfg.DatabasePort, err = strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_PORT: %w", err)
	}

	cfg.DatabaseName = os.Getenv("DATABASE_NAME")
	if cfg.DatabaseName == "" {
		return nil, fmt.Errorf("DATABASE_NAME is not set")
	}

	cfg.DatabaseUser = os.Getenv("DATABASE_USER")
	if cfg.DatabaseUser == "" {
		return nil, fmt.Errorf("DATABASE_USER is not set")
	}

	cfg.DatabaseAccessSecret = os.Getenv("DATABASE_ACCESS_SECRET")
	if cfg.DatabaseAccessSecret == "" {
		return nil, fmt.Errorf("DATABASE_ACCESS_SECRET is not set")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecMonthly = os.Getenv("CRON_SPEC_MONTHLY")
	if cfg.CronSpecMonthly == "" {
		cfg.CronSpecMonthly = "0 5 1 * *" // Default: 05:00 on the first day of each month
	}

	cfg.CronSpecDaily = os.Getenv("CRON_SPEC_DAILY")
	if cfg.CronSpecDaily == "" {
		cfg.CronSpecDaily = "30 5 * * *" // Default: 05:30 every day
	}

	cfg.HTTPListenAddr = os.Getenv("HTTP_LISTEN_ADDR")
	if cfg.HTTPListenAddr == "" {
		cfg.HTTPListenAddr = ":8080"
	}

	// Email settings are optional: dispatch skips with a warning when they are
	// missing instead of failing the whole service at startup.
	cfg.SMTPHost = os.Getenv("SMTP_HOST")

	smtpPortStr := os.Getenv("SMTP_PORT")
	if smtpPortStr == "" {
		smtpPortStr = "587"
	}
	cfg.SMTPPort, err = strconv.Atoi(smtpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.EmailFrom = os.Getenv("EMAIL_FROM")
	cfg.EmailTo = splitRecipients(os.Getenv("EMAIL_TO"))

	return cfg, nil
}

// splitRecipients parses a comma-separated recipient list, dropping empty entries.
func splitRecipients(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))
	for _, p := range parts {
		if addr := strings.TrimSpace(p); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}
