package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSummaryMaxRunes is the overview summary length when SUMMARY_MAX_RUNES is unset.
const DefaultSummaryMaxRunes = 80

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	// DBUrl selects the Postgres slide source when set.
	DBUrl string
	// SlidesFile selects a JSON lesson file when set and DBUrl is empty.
	SlidesFile         string
	CORSAllowedOrigins []string
	SummaryMaxRunes    int
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is authoritative and .env may not exist.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               os.Getenv("PORT"),
		DBUrl:              os.Getenv("DATABASE_URL"),
		SlidesFile:         os.Getenv("SLIDES_FILE"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		SummaryMaxRunes:    DefaultSummaryMaxRunes,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if s := os.Getenv("SUMMARY_MAX_RUNES"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid SUMMARY_MAX_RUNES %q: must be a non-negative integer", s)
		}
		cfg.SummaryMaxRunes = n
	}

	return cfg, nil
}

// SlideSource names the source the lesson will be loaded from: "postgres", "file" or "embedded".
func (c *Config) SlideSource() string {
	switch {
	case c.DBUrl != "":
		return "postgres"
	case c.SlidesFile != "":
		return "file"
	default:
		return "embedded"
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
