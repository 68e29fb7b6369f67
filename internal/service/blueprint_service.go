package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/platform/logger"
	"github.com/postcraft/postcraft-api/internal/store"
)

// BlueprintInput carries the onboarding answers that make up a brand
// blueprint.
type BlueprintInput struct {
	Topics           []string
	Goal             string
	Tone             string
	PostingFrequency string
	PreferredDays    []string
	AskBeforePublish bool
}

// BlueprintService manages the user's brand blueprint.
type BlueprintService interface {
	// SaveBlueprint creates the user's blueprint, or replaces it if one
	// already exists. The read-then-write runs in a transaction so two
	// concurrent onboarding submissions cannot both insert.
	SaveBlueprint(ctx context.Context, userID uuid.UUID, input BlueprintInput) (*domain.BrandBlueprint, error)

	// GetBlueprint retrieves the user's blueprint.
	// Returns store.ErrBlueprintNotFound when onboarding is incomplete.
	GetBlueprint(ctx context.Context, userID uuid.UUID) (*domain.BrandBlueprint, error)
}

// BlueprintServiceError wraps errors from the blueprint service with context.
type BlueprintServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for BlueprintServiceError.
func (e *BlueprintServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("blueprint service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("blueprint service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *BlueprintServiceError) Unwrap() error {
	return e.Err
}

// blueprintServiceImpl implements the BlueprintService interface
type blueprintServiceImpl struct {
	blueprints store.BlueprintStore
	db         *sql.DB
	logger     *slog.Logger
}

// NewBlueprintService creates a new BlueprintService. db may be nil when the
// backing store is not transactional (e.g. the in-memory store); SaveBlueprint
// then runs without a transaction.
func NewBlueprintService(blueprints store.BlueprintStore, db *sql.DB, log *slog.Logger) (BlueprintService, error) {
	if blueprints == nil {
		return nil, &BlueprintServiceError{
			Operation: "create_service",
			Message:   "blueprint store cannot be nil",
		}
	}
	if log == nil {
		log = slog.Default()
	}

	return &blueprintServiceImpl{
		blueprints: blueprints,
		db:         db,
		logger:     log.With("component", "blueprint_service"),
	}, nil
}

// SaveBlueprint implements BlueprintService.
func (s *blueprintServiceImpl) SaveBlueprint(
	ctx context.Context,
	userID uuid.UUID,
	input BlueprintInput,
) (*domain.BrandBlueprint, error) {
	blueprint, err := domain.NewBrandBlueprint(
		userID,
		input.Topics,
		input.Goal,
		input.Tone,
		input.PostingFrequency,
		input.PreferredDays,
		input.AskBeforePublish,
	)
	if err != nil {
		return nil, err
	}

	if s.db == nil {
		if err := s.upsert(ctx, s.blueprints, blueprint); err != nil {
			return nil, err
		}
	} else {
		err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
			return s.upsert(ctx, s.blueprints.WithTx(tx), blueprint)
		})
		if err != nil {
			return nil, err
		}
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.InfoContext(ctx, "brand blueprint saved",
		slog.String("user_id", userID.String()),
		slog.Int("topic_count", len(blueprint.Topics)))

	return blueprint, nil
}

// upsert creates the blueprint, or carries the existing row's identity over
// and updates it when the user already onboarded.
func (s *blueprintServiceImpl) upsert(
	ctx context.Context,
	blueprints store.BlueprintStore,
	blueprint *domain.BrandBlueprint,
) error {
	existing, err := blueprints.GetByUserID(ctx, blueprint.UserID)
	switch {
	case err == nil:
		blueprint.ID = existing.ID
		blueprint.CreatedAt = existing.CreatedAt
		if err := blueprints.Update(ctx, blueprint); err != nil {
			return &BlueprintServiceError{
				Operation: "save_blueprint",
				Message:   "failed to update blueprint",
				Err:       err,
			}
		}
		return nil

	case store.IsNotFoundError(err):
		if err := blueprints.Create(ctx, blueprint); err != nil {
			return &BlueprintServiceError{
				Operation: "save_blueprint",
				Message:   "failed to create blueprint",
				Err:       err,
			}
		}
		return nil

	default:
		return &BlueprintServiceError{
			Operation: "save_blueprint",
			Message:   "failed to load existing blueprint",
			Err:       err,
		}
	}
}

// GetBlueprint implements BlueprintService.
func (s *blueprintServiceImpl) GetBlueprint(ctx context.Context, userID uuid.UUID) (*domain.BrandBlueprint, error) {
	blueprint, err := s.blueprints.GetByUserID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, &BlueprintServiceError{
			Operation: "get_blueprint",
			Message:   "failed to load blueprint",
			Err:       err,
		}
	}
	return blueprint, nil
}
