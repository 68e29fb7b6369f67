// Package supabase implements object storage backed by Supabase Storage.
// It is used to persist post images and serve them through public bucket URLs.
package supabase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"

	"github.com/postcraft/postcraft-api/internal/config"
	"github.com/postcraft/postcraft-api/internal/platform/logger"
	"github.com/postcraft/postcraft-api/internal/store"
)

// SupabaseObjectStore implements the store.ObjectStore interface using a
// Supabase Storage bucket as the backend.
type SupabaseObjectStore struct {
	client *supabase.Client
	bucket string
	logger *slog.Logger
}

// NewSupabaseObjectStore creates an object store for the configured bucket.
// If logger is nil, a default logger will be used.
func NewSupabaseObjectStore(cfg config.StorageConfig, log *slog.Logger) (*SupabaseObjectStore, error) {
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("supabase key is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	if log == nil {
		log = slog.Default()
	}

	return &SupabaseObjectStore{
		client: client,
		bucket: cfg.Bucket,
		logger: log.With(slog.String("component", "object_store")),
	}, nil
}

// Ensure SupabaseObjectStore implements store.ObjectStore interface
var _ store.ObjectStore = (*SupabaseObjectStore)(nil)

// Upload stores the object at the given path and returns its public URL.
// Existing objects at the same path are overwritten.
func (s *SupabaseObjectStore) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	upsert := true
	_, err := s.client.Storage.UploadFile(s.bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		log.Error("failed to upload object",
			slog.String("error", err.Error()),
			slog.String("path", path),
			slog.String("bucket", s.bucket))
		return "", fmt.Errorf("failed to upload object %q: %w", path, err)
	}

	url := s.client.Storage.GetPublicUrl(s.bucket, path).SignedURL

	log.Info("object uploaded successfully",
		slog.String("path", path),
		slog.String("bucket", s.bucket),
		slog.Int("size_bytes", len(data)))
	return url, nil
}

// Delete removes the object at the given path.
func (s *SupabaseObjectStore) Delete(ctx context.Context, path string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.client.Storage.RemoveFile(s.bucket, []string{path})
	if err != nil {
		log.Error("failed to delete object",
			slog.String("error", err.Error()),
			slog.String("path", path),
			slog.String("bucket", s.bucket))
		return fmt.Errorf("failed to delete object %q: %w", path, err)
	}

	log.Info("object deleted successfully",
		slog.String("path", path),
		slog.String("bucket", s.bucket))
	return nil
}
