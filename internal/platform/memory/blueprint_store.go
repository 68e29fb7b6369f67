// Package memory provides in-memory implementations of the store interfaces.
// These are useful for local development and tests that don't need a database.
package memory

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/store"
)

// InMemoryBlueprintStore implements store.BlueprintStore with a map guarded
// by a mutex. Blueprints are keyed by owner since each user has at most one.
type InMemoryBlueprintStore struct {
	mu         sync.RWMutex
	blueprints map[uuid.UUID]*domain.BrandBlueprint
}

// NewInMemoryBlueprintStore creates an empty in-memory blueprint store.
func NewInMemoryBlueprintStore() *InMemoryBlueprintStore {
	return &InMemoryBlueprintStore{
		blueprints: make(map[uuid.UUID]*domain.BrandBlueprint),
	}
}

// Ensure InMemoryBlueprintStore implements store.BlueprintStore interface
var _ store.BlueprintStore = (*InMemoryBlueprintStore)(nil)

// Create implements store.BlueprintStore.Create
// Returns store.ErrBlueprintExists if the user already has a blueprint.
func (s *InMemoryBlueprintStore) Create(ctx context.Context, blueprint *domain.BrandBlueprint) error {
	if err := blueprint.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.blueprints[blueprint.UserID]; exists {
		return store.ErrBlueprintExists
	}

	s.blueprints[blueprint.UserID] = cloneBlueprint(blueprint)
	return nil
}

// GetByUserID implements store.BlueprintStore.GetByUserID
// Returns store.ErrBlueprintNotFound if the user has no blueprint.
func (s *InMemoryBlueprintStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.BrandBlueprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blueprint, exists := s.blueprints[userID]
	if !exists {
		return nil, store.ErrBlueprintNotFound
	}

	return cloneBlueprint(blueprint), nil
}

// Update implements store.BlueprintStore.Update
// Returns store.ErrBlueprintNotFound if the blueprint does not exist.
func (s *InMemoryBlueprintStore) Update(ctx context.Context, blueprint *domain.BrandBlueprint) error {
	if err := blueprint.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.blueprints[blueprint.UserID]
	if !exists || existing.ID != blueprint.ID {
		return store.ErrBlueprintNotFound
	}

	blueprint.UpdatedAt = time.Now().UTC()
	s.blueprints[blueprint.UserID] = cloneBlueprint(blueprint)
	return nil
}

// WithTx implements store.BlueprintStore.WithTx
// The in-memory store has no transaction support, so it returns itself.
func (s *InMemoryBlueprintStore) WithTx(tx *sql.Tx) store.BlueprintStore {
	return s
}

// cloneBlueprint copies a blueprint so callers can't mutate stored state.
func cloneBlueprint(src *domain.BrandBlueprint) *domain.BrandBlueprint {
	dst := *src
	dst.Topics = append([]string(nil), src.Topics...)
	dst.PreferredDays = append([]string(nil), src.PreferredDays...)
	return &dst
}
