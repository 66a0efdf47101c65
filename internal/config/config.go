package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. It is loaded once at startup and
// treated as immutable afterwards.
type Config struct {
	// Environment: development, production, or test.
	Env string

	// HTTP server
	Port       string
	CORSOrigin string

	// Database
	DatabasePath string

	// Auth
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// Load reads configuration from the environment, consulting a .env file if
// one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:          getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		CORSOrigin:   getEnv("CLIENT_URL", "http://localhost:5173"),
		DatabasePath: getEnv("DATABASE_PATH", "finance-tracker.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     getEnvDuration("TOKEN_TTL", time.Hour),
		BcryptCost:   getEnvInt("BCRYPT_COST", 10),
	}
}

// Validate checks the configuration and returns an error listing every
// problem found.
func (c *Config) Validate() error {
	var problems []string

	switch c.Env {
	case "development", "production", "test":
	default:
		problems = append(problems, fmt.Sprintf("invalid APP_ENV %q: must be development, production, or test", c.Env))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	} else if len(c.JWTSecret) < 32 {
		problems = append(problems, "JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if c.TokenTTL <= 0 {
		problems = append(problems, "TOKEN_TTL must be positive")
	}

	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		problems = append(problems, fmt.Sprintf("BCRYPT_COST %d out of range: must be between 4 and 14", c.BcryptCost))
	}

	if c.DatabasePath == "" {
		problems = append(problems, "DATABASE_PATH cannot be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// IsProduction reports whether the process runs in production mode. Cookie
// hardening (Secure, SameSite=Strict) keys off this.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
