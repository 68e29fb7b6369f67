package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	CreateFn       func(ctx context.Context, post *domain.Post) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindByUserIDFn func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Post, error)
	UpdateFn       func(ctx context.Context, post *domain.Post) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
	WithTxFn       func(tx *sql.Tx) store.PostStore
}

// Create implements store.PostStore
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}
	return nil
}

// GetByID implements store.PostStore
func (m *MockPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrPostNotFound
}

// FindByUserID implements store.PostStore
func (m *MockPostStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Post, error) {
	if m.FindByUserIDFn != nil {
		return m.FindByUserIDFn(ctx, userID, limit, offset)
	}
	return []*domain.Post{}, nil
}

// Update implements store.PostStore
func (m *MockPostStore) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, post)
	}
	return nil
}

// Delete implements store.PostStore
func (m *MockPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// WithTx implements store.PostStore
func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	if m.WithTxFn != nil {
		return m.WithTxFn(tx)
	}
	return m
}

// Verify interface compliance at compile time
var _ store.PostStore = (*MockPostStore)(nil)
