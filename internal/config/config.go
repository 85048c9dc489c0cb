package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Upload   UploadConfig
	Booking  BookingConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret       string
	ValidityDays int
}

// UploadConfig holds media-store configuration. Driver is either
// "cloudinary" (documents proxied to the external media host) or
// "local" (dev fallback, files written under LocalDir).
type UploadConfig struct {
	Driver    string
	LocalDir  string
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// BookingConfig holds booking workflow policy
type BookingConfig struct {
	// AllowRedecide permits a manager to move an already APPROVED or
	// REJECTED booking to the other decision. The reference workflow
	// allows it, so it defaults to true.
	AllowRedecide    bool
	StalePendingDays int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "5000"),
		Database: loadDatabaseConfig(),
		JWT:      loadJWTConfig(),
		Upload:   loadUploadConfig(),
		Booking:  loadBookingConfig(),
	}

	AppConfig = config

	log.Printf("Configuration loaded [MODE: %s]", appMode)
	return config, nil
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "stayhub"),
	}
}

func loadJWTConfig() JWTConfig {
	days, _ := strconv.Atoi(getEnv("TOKEN_VALIDITY_DAYS", "30"))
	if days < 1 {
		days = 30
	}

	return JWTConfig{
		Secret:       getEnv("JWT_SECRET", "default_secret"),
		ValidityDays: days,
	}
}

func loadUploadConfig() UploadConfig {
	return UploadConfig{
		Driver:    getEnv("UPLOAD_DRIVER", "local"),
		LocalDir:  getEnv("UPLOAD_DIR", "./uploads"),
		CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		Folder:    getEnv("CLOUDINARY_FOLDER", "uploads"),
	}
}

func loadBookingConfig() BookingConfig {
	allowRedecide, _ := strconv.ParseBool(getEnv("BOOKING_ALLOW_REDECIDE", "true"))
	staleDays, _ := strconv.Atoi(getEnv("BOOKING_STALE_PENDING_DAYS", "7"))

	return BookingConfig{
		AllowRedecide:    allowRedecide,
		StalePendingDays: staleDays,
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://stayhub.example.com"
	}
	return origins
}
