package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultSessionTTL is how long an idle visitor keeps their page state
	DefaultSessionTTL = 24 * time.Hour
	// DefaultFormRateLimit is the number of form posts allowed per IP per minute
	DefaultFormRateLimit = 120
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	BrandName   string
	// Visitor state
	SessionTTL time.Duration
	// Form posts (email typing, subscribe, plan selection)
	FormRateLimit  int
	AllowedOrigins []string
	// When false the page is served without htmx and every action is a plain form post
	HTMXEnabled bool
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AppURL:         getEnv("APP_URL", "http://localhost:8080"),
		BrandName:      getEnv("BRAND_NAME", "Pulse"),
		SessionTTL:     getEnvDuration("SESSION_TTL", DefaultSessionTTL),
		FormRateLimit:  getEnvInt("FORM_RATE_LIMIT", DefaultFormRateLimit),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		HTMXEnabled:    getEnvBool("HTMX_ENABLED", true),
	}
}

// IsProduction reports whether cookies must be marked Secure
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
