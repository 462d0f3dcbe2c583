package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, StoreFile, cfg.StoreBackend)
	assert.Equal(t, "data/recipes.json", cfg.DocumentPath)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "local", cfg.ImageBackend)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.AdminAuthEnabled())
	assert.False(t, cfg.RateLimitEnabled())
}

func TestLoadConfigUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "cassette-tape")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigBlobRequiresURL(t *testing.T) {
	t.Setenv("STORE_BACKEND", "blob")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("BLOB_URL", "https://blobs.example.com/api/jsonBlob/abc123")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreBlob, cfg.StoreBackend)
}

func TestLoadConfigS3RequiresBucket(t *testing.T) {
	t.Setenv("IMAGE_BACKEND", "s3")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("S3_BUCKET_NAME", "recipebook-images")
	_, err = LoadConfig()
	assert.NoError(t, err)
}

func TestLoadConfigAdminAuthMustBeComplete(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$notarealhashbutlongenough")
	_, err = LoadConfig()
	// Still incomplete without a signing secret
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "secret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.AdminAuthEnabled())
}

func TestLoadConfigRateLimitEnabledByRedis(t *testing.T) {
	t.Setenv("REDIS_HOST", "localhost")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.RateLimitEnabled())
}
