package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/domain"
)

// BlueprintStore defines the interface for brand blueprint persistence.
// Each user owns at most one blueprint.
type BlueprintStore interface {
	// Create saves a new brand blueprint to the store.
	// Returns ErrBlueprintExists if the user already has one.
	// Returns validation errors from the domain BrandBlueprint if data is invalid.
	Create(ctx context.Context, blueprint *domain.BrandBlueprint) error

	// GetByUserID retrieves the blueprint owned by the given user.
	// Returns ErrBlueprintNotFound if the user has not completed onboarding.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.BrandBlueprint, error)

	// Update saves changes to an existing blueprint.
	// Returns ErrBlueprintNotFound if the blueprint does not exist.
	// Returns validation errors if the blueprint data is invalid.
	Update(ctx context.Context, blueprint *domain.BrandBlueprint) error

	// WithTx returns a new BlueprintStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) BlueprintStore
}
