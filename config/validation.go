package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the loaded configuration is internally
// consistent before the server starts.
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q", cfg.ServerPort)
	}

	switch cfg.StoreBackend {
	case StoreMemory:
	case StoreFile:
		if cfg.DocumentPath == "" {
			return fmt.Errorf("DOCUMENT_PATH is required for the file backend")
		}
	case StoreBlob:
		if cfg.BlobURL == "" {
			return fmt.Errorf("BLOB_URL is required for the blob backend")
		}
	case StorePostgres:
		if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
			return fmt.Errorf("DB_HOST, DB_NAME and DB_USER are required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	switch cfg.ImageBackend {
	case "local":
		if cfg.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR is required for local image storage")
		}
	case "s3":
		if cfg.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET_NAME is required for S3 image storage")
		}
	default:
		return fmt.Errorf("unknown IMAGE_BACKEND %q", cfg.ImageBackend)
	}

	// A half-configured admin login is a deployment mistake, not a request
	// for open access.
	if (cfg.AdminUsername == "") != (cfg.AdminPasswordHash == "") {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD_HASH must be set together")
	}
	if cfg.AdminAuthEnabled() && cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when admin auth is enabled")
	}

	return nil
}
