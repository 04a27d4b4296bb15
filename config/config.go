package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultJWTSecret     = "default-secret"
	defaultSessionSecret = "default-session-secret"
)

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	SQLitePath     string
	JWTSecret      string
	SessionSecret  string
	SessionTTL     time.Duration
	SecureCookies  bool
	PageSize       int
	Port           string
	GinMode        string
	AllowedOrigins []string

	SeedUserName     string
	SeedUserEmail    string
	SeedUserPassword string
}

func Load() *Config {
	return &Config{
		DBDriver:         getEnv("DB_DRIVER", DriverSQLite),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", "blog"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		SQLitePath:       getEnv("SQLITE_PATH", "blog.db"),
		JWTSecret:        getEnv("JWT_SECRET", defaultJWTSecret),
		SessionSecret:    getEnv("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:       time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		SecureCookies:    getEnvBool("SESSION_COOKIE_SECURE", false),
		PageSize:         getEnvInt("PAGE_SIZE", 10),
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		AllowedOrigins:   splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		SeedUserName:     getEnv("SEED_USER_NAME", "Admin"),
		SeedUserEmail:    os.Getenv("SEED_USER_EMAIL"),
		SeedUserPassword: os.Getenv("SEED_USER_PASSWORD"),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// ShouldSeed reports whether a user should be ensured at startup.
func (c *Config) ShouldSeed() bool {
	return c.SeedUserEmail != "" && c.SeedUserPassword != ""
}

// DefaultSecrets lists the secret variables still running on built-in values.
func (c *Config) DefaultSecrets() []string {
	var names []string
	if c.JWTSecret == defaultJWTSecret {
		names = append(names, "JWT_SECRET")
	}
	if c.SessionSecret == defaultSessionSecret {
		names = append(names, "SESSION_SECRET")
	}
	return names
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultVal
	}
	return value
}

func getEnvBool(key string, defaultVal bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
