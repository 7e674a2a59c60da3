package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port         string
	DBConn       string
	LogLevel     string
	JWTSecret    string
	ImageDir     string
	ImageBaseURL string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
	ReminderCron string
	RemindDays   []int
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBConn:       getEnv("DB_CONN", "host=localhost port=5432 user=deudas password=deudas dbname=deudas sslmode=disable"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		ImageDir:     getEnv("IMAGE_DIR", "./data/images"),
		ImageBaseURL: getEnv("IMAGE_BASE_URL", "/images"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "deudas@localhost"),
		ReminderCron: getEnv("REMINDER_CRON", "0 9 * * *"),
	}

	days, err := parseRemindDays(getEnv("REMIND_DAYS_BEFORE", "3,1,0"))
	if err != nil {
		return nil, err
	}
	cfg.RemindDays = days

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// parseRemindDays parses a comma-separated list of day offsets, e.g. "3,1,0".
func parseRemindDays(raw string) ([]int, error) {
	var days []int
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid REMIND_DAYS_BEFORE entry: %q", p)
		}
		days = append(days, n)
	}
	if len(days) == 0 {
		days = []int{3, 1, 0}
	}
	return days, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
