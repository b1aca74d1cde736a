package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port          string
	MongoURI      string
	MongoDBName   string
	JWTSecret     string
	RedisURL      string
	AppBaseURL    string
	LogLevel      string
	LogFormat     string
	RateLimitRPS  float64
	AllowedOrigin []string

	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	ClubCacheTTL       time.Duration

	EmailHost        string
	EmailPort        string
	EmailUsername    string
	EmailAppPassword string
	EmailFrom        string

	GoogleClientID     string
	GoogleClientSecret string

	AdminBootstrapEmail string
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// Load reads the configuration from the environment. The .env file, if
// any, must already have been loaded by the caller.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGODB_URI", ""),
		MongoDBName:   getEnv("MONGODB_DB_NAME", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		RateLimitRPS:  getEnvAsFloat("RATE_LIMIT_RPS", 10),
		AllowedOrigin: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),

		AccessTokenExpiry:  time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 15)),
		RefreshTokenExpiry: time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)), // 7 days
		ClubCacheTTL:       getEnvAsDuration("CLUB_CACHE_TTL", 10*time.Minute),

		EmailHost:        getEnv("EMAIL_HOST", ""),
		EmailPort:        getEnv("EMAIL_PORT", "587"),
		EmailUsername:    getEnv("EMAIL_USERNAME", ""),
		EmailAppPassword: getEnv("EMAIL_APP_PASSWORD", ""),
		EmailFrom:        getEnv("EMAIL_FROM", ""),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),

		AdminBootstrapEmail: strings.ToLower(getEnv("ADMIN_BOOTSTRAP_EMAIL", "")),
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGODB_URI")
	}
	if c.MongoDBName == "" {
		missing = append(missing, "MONGODB_DB_NAME")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if c.RateLimitRPS <= 0 {
		return errors.New("RATE_LIMIT_RPS must be positive")
	}
	return nil
}

// MailEnabled reports whether SMTP settings were provided.
func (c *Config) MailEnabled() bool { return c.EmailHost != "" }

// GoogleEnabled reports whether Google sign-in is configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

func (c *Config) GetAdminBootstrapEmail() string {
	return c.AdminBootstrapEmail
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(name, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(name, ""), 64); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go duration strings such as "90s" or "10m".
func getEnvAsDuration(name string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(name, "")); err == nil {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated variable, dropping empty items.
func getEnvAsList(name string, fallback []string) []string {
	raw := getEnv(name, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
