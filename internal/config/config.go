package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName          string
	AppVersion       string
	Environment      string
	HTTPAddr         string
	LogLevel         string
	AuthCookieSecure bool

	// BootstrapDemoData seeds a demo owner and restaurant on startup.
	// Ignored in production.
	BootstrapDemoData bool
	DemoOwnerEmail    string
	DemoOwnerPassword string

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:          getenv("APP_SERVICE", "carta"),
		AppVersion:       getenv("APP_VERSION", "0.1.0"),
		Environment:      environment,
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		AuthCookieSecure: authCookieSecure,

		BootstrapDemoData: getenvBool("BOOTSTRAP_DEMO_DATA", false),
		DemoOwnerEmail:    getenv("DEMO_OWNER_EMAIL", "owner@la-pizzeria.test"),
		DemoOwnerPassword: getenv("DEMO_OWNER_PASSWORD", "pizza-time"),

		DBType:     getenv("DATABASE_TYPE", "postgres"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "carta"),
		DBUser:     getenv("DATABASE_USER", "postgres"),
		DBPassword: getenv("DATABASE_PASSWORD", "postgres"),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		switch value {
		case "yes", "y", "on":
			return true
		case "no", "n", "off":
			return false
		}
		return def
	}
	return parsed
}

// Module wires configuration loading.
var Module = fx.Module("config",
	fx.Provide(Load),
)
