package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/hazelkitchen/recipebook/backend/config"
)

// ImageStore saves uploaded recipe images and returns the URL to record on
// the recipe.
type ImageStore interface {
	Save(ctx context.Context, filename string, data []byte, contentType string) (string, error)
}

// UploadFilename derives a collision-free object name from the original
// upload name, keeping the extension so content types stay inferable.
func UploadFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	return uuid.NewString() + ext
}

// LocalImageStore writes images under a single fixed upload directory,
// served back by the uploads endpoint.
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore creates an image store rooted at dir.
func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{dir: dir}
}

// Save writes the image and returns its serving path.
func (s *LocalImageStore) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload %s: %w", filename, err)
	}
	return "/uploads/" + filename, nil
}

// S3ImageStore stores images in a public-read S3 bucket.
type S3ImageStore struct {
	s3cfg *config.S3Config
}

// NewS3ImageStore creates an image store over the given S3 configuration.
func NewS3ImageStore(s3cfg *config.S3Config) *S3ImageStore {
	return &S3ImageStore{s3cfg: s3cfg}
}

// Save uploads the image and returns its public URL.
func (s *S3ImageStore) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	key := "recipe-images/" + filename
	_, err := s.s3cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3cfg.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading image to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3cfg.BucketName, key), nil
}
