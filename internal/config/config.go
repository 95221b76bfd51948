// Package config reads the process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/moneyjournal/backend/pkg/registry"
)

// DevelopmentSessionSecret is used when SESSION_SECRET is not set in debug mode.
const DevelopmentSessionSecret = "moneyjournal-development-secret!"

type Config struct {
	// HTTP server
	Port             string
	CORSAllowOrigins []string
	EnablePprof      bool
	Debug            bool

	// Database
	DatabaseURL string

	// Sessions
	SessionSecret string
	SessionMaxAge time.Duration
	SessionSecure bool // Only send the session cookie over HTTPS

	// Household
	BudgetOwnerRole string
	Timezone        string
	Location        *time.Location

	// Email notifications
	EmailAPIKey     string
	EmailAPIURL     string
	EmailFrom       string
	EmailRecipients []string

	// Rate limiting for login and registration
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// LoadDotEnv loads variables from a .env file in the working directory.
// Variables that are already set are not overridden. A missing file is
// not an error.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the configuration from the environment.
func Load() *Config {
	debug := os.Getenv("GIN_MODE") == "debug"

	cfg := &Config{
		Port:             getEnv("PORT", "5000"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),
		Debug:            debug,

		DatabaseURL: getEnv("DATABASE_URL", "data/moneyjournal.db"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionMaxAge: getEnvDuration("SESSION_MAX_AGE", 24*time.Hour),
		SessionSecure: getEnvBool("SESSION_SECURE", false),

		BudgetOwnerRole: getEnv("BUDGET_OWNER_ROLE", registry.RoleWife),
		Timezone:        getEnv("TIMEZONE", "Asia/Jakarta"),

		EmailAPIKey:     os.Getenv("EMAIL_API_KEY"),
		EmailAPIURL:     getEnv("EMAIL_API_URL", "https://api.resend.com/emails"),
		EmailFrom:       getEnv("EMAIL_FROM", "Money Journal <onboarding@resend.dev>"),
		EmailRecipients: getEnvList("EMAIL_RECIPIENTS"),

		AuthRateLimit:  getEnvInt("AUTH_RATE_LIMIT", 20),
		AuthRateWindow: getEnvDuration("AUTH_RATE_WINDOW", 15*time.Minute),
	}

	if cfg.SessionSecret == "" && debug {
		cfg.SessionSecret = DevelopmentSessionSecret
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid.
// It also resolves the time zone.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL must not be empty")
	}

	if c.SessionSecret == "" {
		problems = append(problems, "SESSION_SECRET is required")
	} else if len(c.SessionSecret) < 32 {
		problems = append(problems, "SESSION_SECRET must be at least 32 characters long")
	}

	if c.SessionMaxAge < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid session max age %v: must be at least 1 minute", c.SessionMaxAge))
	}

	if !registry.IsRole(c.BudgetOwnerRole) {
		problems = append(problems, fmt.Sprintf("invalid budget owner role '%s': must be one of %v", c.BudgetOwnerRole, registry.Roles()))
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		problems = append(problems, fmt.Sprintf("invalid time zone '%s': %v", c.Timezone, err))
	} else {
		c.Location = loc
	}

	if c.EmailAPIKey != "" && len(c.EmailRecipients) == 0 {
		problems = append(problems, "EMAIL_RECIPIENTS is required when EMAIL_API_KEY is set")
	}

	if c.AuthRateLimit < 1 {
		problems = append(problems, fmt.Sprintf("invalid auth rate limit %d: must be at least 1", c.AuthRateLimit))
	}

	if c.AuthRateWindow <= 0 {
		problems = append(problems, fmt.Sprintf("invalid auth rate window %v: must be positive", c.AuthRateWindow))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// EmailEnabled reports whether transaction notifications are sent.
func (c *Config) EmailEnabled() bool {
	return c.EmailAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	var list []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
