package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/store"
)

// MockBlueprintStore implements store.BlueprintStore for testing
type MockBlueprintStore struct {
	CreateFn      func(ctx context.Context, blueprint *domain.BrandBlueprint) error
	GetByUserIDFn func(ctx context.Context, userID uuid.UUID) (*domain.BrandBlueprint, error)
	UpdateFn      func(ctx context.Context, blueprint *domain.BrandBlueprint) error
	WithTxFn      func(tx *sql.Tx) store.BlueprintStore
}

// Create implements store.BlueprintStore
func (m *MockBlueprintStore) Create(ctx context.Context, blueprint *domain.BrandBlueprint) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, blueprint)
	}
	return nil
}

// GetByUserID implements store.BlueprintStore
func (m *MockBlueprintStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.BrandBlueprint, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, store.ErrBlueprintNotFound
}

// Update implements store.BlueprintStore
func (m *MockBlueprintStore) Update(ctx context.Context, blueprint *domain.BrandBlueprint) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, blueprint)
	}
	return nil
}

// WithTx implements store.BlueprintStore
func (m *MockBlueprintStore) WithTx(tx *sql.Tx) store.BlueprintStore {
	if m.WithTxFn != nil {
		return m.WithTxFn(tx)
	}
	return m
}

// Verify interface compliance at compile time
var _ store.BlueprintStore = (*MockBlueprintStore)(nil)
