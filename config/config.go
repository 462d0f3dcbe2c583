package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// StoreBackend selects which persistence variant backs the recipe repository.
type StoreBackend string

const (
	StoreMemory   StoreBackend = "memory"
	StoreFile     StoreBackend = "file"
	StoreBlob     StoreBackend = "blob"
	StorePostgres StoreBackend = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Store selection: memory, file, blob or postgres
	StoreBackend StoreBackend
	// Whole-document variants
	DocumentPath string // file backend
	BlobURL      string // blob backend

	// Database configuration (postgres backend)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (optional, enables rate limiting when set)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Admin auth (optional; mutating routes are open when unset)
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration

	// Image storage
	UploadDir    string
	ImageBackend string // "local" or "s3"
	S3Bucket     string
	AWSRegion    string

	// CORS
	AllowedOrigins []string
}

// LoadConfig builds a Config from environment variables. A local .env file is
// loaded first when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		StoreBackend: StoreBackend(getEnv("STORE_BACKEND", string(StoreFile))),
		DocumentPath: getEnv("DOCUMENT_PATH", "data/recipes.json"),
		BlobURL:      os.Getenv("BLOB_URL"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "recipebook"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		RedisURL:      os.Getenv("REDIS_URL"),

		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          getEnvAsDuration("TOKEN_TTL", 12*time.Hour),

		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		ImageBackend: getEnv("IMAGE_BACKEND", "local"),
		S3Bucket:     os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:    os.Getenv("AWS_REGION"),

		AllowedOrigins: []string{getEnv("FRONTEND_ORIGIN", "http://localhost:3000")},
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// AdminAuthEnabled reports whether the mutating routes require a token.
func (c *Config) AdminAuthEnabled() bool {
	return c.AdminUsername != "" && c.AdminPasswordHash != ""
}

// RateLimitEnabled reports whether Redis-backed rate limiting is configured.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisHost != "" || c.RedisURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid integer for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid duration for %s, using default %s", key, fallback)
	}
	return fallback
}
