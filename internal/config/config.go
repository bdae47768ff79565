package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName          string
	AppVersion       string
	Environment      string
	HTTPAddr         string
	LogLevel         string
	AuthCookieSecure bool

	CORSAllowedOrigins []string

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	Storage StorageConfig

	Bootstrap BootstrapConfig
}

type StorageConfig struct {
	// Provider selects the blob store backing image uploads:
	// "cloudinary" or "local".
	Provider         string
	CloudinaryURL    string
	CloudinaryFolder string
	LocalDir         string
	PublicBaseURL    string
}

type BootstrapConfig struct {
	EnsureDefaultAdmin bool
	AdminUsername      string
	AdminPassword      string
	SeedCategories     bool
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
		AppName:          getenv("APP_SERVICE", "polen"),
		AppVersion:       getenv("APP_VERSION", "0.1.0"),
		Environment:      environment,
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		LogLevel:         strings.ToLower(getenv("LOG_LEVEL", "info")),
		AuthCookieSecure: authCookieSecure,

		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),

		DBType:     getenv("DATABASE_TYPE", "postgres"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "polen"),
		DBUser:     getenv("DATABASE_USER", "postgres"),
		DBPassword: getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),

		Storage: StorageConfig{
			Provider:         strings.ToLower(getenv("STORAGE_PROVIDER", "local")),
			CloudinaryURL:    strings.TrimSpace(getenv("CLOUDINARY_URL", "")),
			CloudinaryFolder: getenv("CLOUDINARY_FOLDER", "polen/productos"),
			LocalDir:         getenv("STORAGE_LOCAL_DIR", "./public/uploads"),
			PublicBaseURL:    strings.TrimRight(getenv("STORAGE_PUBLIC_BASE_URL", "/uploads"), "/"),
		},

		Bootstrap: BootstrapConfig{
			EnsureDefaultAdmin: getenvBool("BOOTSTRAP_DEFAULT_ADMIN", true),
			AdminUsername:      getenv("BOOTSTRAP_ADMIN_USERNAME", "admin"),
			AdminPassword:      getenv("BOOTSTRAP_ADMIN_PASSWORD", "admin"),
			SeedCategories:     getenvBool("BOOTSTRAP_SEED_CATEGORIES", true),
		},
	}
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
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
