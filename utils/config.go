package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	defaultSheetID    = "1FRQEuLlpJbrmaznAkcgJJHwYeHhbAdSE7doDawpXuGE"
	defaultSenderName = "Assistant recommandations"
)

// Config is read once at startup and handed to the components that need it.
type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins []string

	SheetID         string
	SheetLayout     string
	Location        *time.Location
	SeedSheetHeader bool

	// Service-account key, either inline JSON or read from GOOGLE_CREDENTIALS_FILE.
	GoogleCredentials []byte

	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	SMTPSenderName string
}

// LoadConfig reads the environment. The .env file, if any, must already be loaded.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		SheetID:        getEnv("SHEET_ID", defaultSheetID),
		SheetLayout:    getEnv("SHEET_LAYOUT", "compact"),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SMTPSenderName: getEnv("SMTP_SENDER_NAME", defaultSenderName),
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPPort = port

	if v := os.Getenv("SEED_SHEET_HEADER"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_SHEET_HEADER: %w", err)
		}
		cfg.SeedSheetHeader = seed
	}

	cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "Europe/Paris"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	switch {
	case os.Getenv("GOOGLE_CREDENTIALS_JSON") != "":
		cfg.GoogleCredentials = []byte(os.Getenv("GOOGLE_CREDENTIALS_JSON"))
	case os.Getenv("GOOGLE_CREDENTIALS_FILE") != "":
		cfg.GoogleCredentials, err = os.ReadFile(os.Getenv("GOOGLE_CREDENTIALS_FILE"))
		if err != nil {
			return nil, fmt.Errorf("reading google credentials: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if len(c.GoogleCredentials) == 0 {
		missing = append(missing, "GOOGLE_CREDENTIALS_JSON or GOOGLE_CREDENTIALS_FILE")
	}
	if c.SMTPUser == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.SMTPPass == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if len(missing) > 0 {
		return errors.New("missing configuration: " + strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
