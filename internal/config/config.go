package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Server struct {
		Port    string
		GinMode string
	}

	Storage struct {
		Endpoint      string
		AccessKey     string
		SecretKey     string
		UseSSL        bool
		PublicBaseURL string
	}

	Upload struct {
		MaxFileSize int64
	}

	Geocode struct {
		BaseURL     string
		CountryCode string
		Language    string
	}

	CORS struct {
		AllowOrigins string
		AllowMethods string
		AllowHeaders string
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{}

	config.DB.Host = getEnv("DB_HOST", "localhost")
	config.DB.Port = getEnv("DB_PORT", "5432")
	config.DB.User = getEnv("DB_USER", "memory")
	config.DB.Password = getEnv("DB_PASSWORD", "memory_password")
	config.DB.Name = getEnv("DB_NAME", "memory_db")
	config.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	config.Server.Port = getEnv("PORT", "8080")
	config.Server.GinMode = getEnv("GIN_MODE", "debug")

	config.Storage.Endpoint = getEnv("STORAGE_ENDPOINT", "localhost:9000")
	config.Storage.AccessKey = getEnv("STORAGE_ACCESS_KEY", "")
	config.Storage.SecretKey = getEnv("STORAGE_SECRET_KEY", "")
	config.Storage.UseSSL = getEnvAsBool("STORAGE_USE_SSL", false)
	config.Storage.PublicBaseURL = getEnv("STORAGE_PUBLIC_BASE_URL", "")

	config.Upload.MaxFileSize = getEnvAsInt64("MAX_FILE_SIZE", 10485760)

	config.Geocode.BaseURL = getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org")
	config.Geocode.CountryCode = getEnv("GEOCODE_COUNTRY_CODE", "vn")
	config.Geocode.Language = getEnv("GEOCODE_LANGUAGE", "vi")

	config.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	config.CORS.AllowMethods = getEnv("CORS_ALLOW_METHODS", "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS")
	config.CORS.AllowHeaders = getEnv("CORS_ALLOW_HEADERS", "Origin,Content-Length,Content-Type,Authorization")

	return config
}

// Validate checks that the configuration required at startup is present.
// Missing store credentials fail here instead of on the first request.
func (c *Config) Validate() error {
	if c.DB.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.DB.Name == "" {
		return fmt.Errorf("database name cannot be empty")
	}
	if c.Storage.Endpoint == "" {
		return fmt.Errorf("storage endpoint cannot be empty")
	}
	if c.Storage.AccessKey == "" {
		return fmt.Errorf("storage access key cannot be empty")
	}
	if c.Storage.SecretKey == "" {
		return fmt.Errorf("storage secret key cannot be empty")
	}
	return nil
}

// GetDatabaseURL returns the database connection URL
func (c *Config) GetDatabaseURL() string {
	return "postgres://" + c.DB.User + ":" + c.DB.Password + "@" + c.DB.Host + ":" + c.DB.Port + "/" + c.DB.Name + "?sslmode=" + c.DB.SSLMode
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 gets an environment variable as int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
