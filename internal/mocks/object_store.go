package mocks

import (
	"context"

	"github.com/postcraft/postcraft-api/internal/store"
)

// MockObjectStore implements store.ObjectStore for testing
type MockObjectStore struct {
	UploadFn func(ctx context.Context, path string, contentType string, data []byte) (string, error)
	DeleteFn func(ctx context.Context, path string) error

	// Uploads records the paths passed to Upload calls
	Uploads []string
}

// Upload implements store.ObjectStore
func (m *MockObjectStore) Upload(ctx context.Context, path string, contentType string, data []byte) (string, error) {
	m.Uploads = append(m.Uploads, path)
	if m.UploadFn != nil {
		return m.UploadFn(ctx, path, contentType, data)
	}
	return "https://storage.example.com/" + path, nil
}

// Delete implements store.ObjectStore
func (m *MockObjectStore) Delete(ctx context.Context, path string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, path)
	}
	return nil
}

// Verify interface compliance at compile time
var _ store.ObjectStore = (*MockObjectStore)(nil)
