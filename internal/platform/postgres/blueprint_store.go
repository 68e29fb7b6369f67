package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/platform/logger"
	"github.com/postcraft/postcraft-api/internal/store"
)

// PostgresBlueprintStore implements the store.BlueprintStore interface
// using a PostgreSQL database as the storage backend.
// Blueprints have a one-per-user uniqueness constraint on user_id.
type PostgresBlueprintStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBlueprintStore creates a new PostgreSQL implementation of the BlueprintStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBlueprintStore(db store.DBTX, logger *slog.Logger) *PostgresBlueprintStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBlueprintStore{
		db:     db,
		logger: logger.With(slog.String("component", "blueprint_store")),
	}
}

// Ensure PostgresBlueprintStore implements store.BlueprintStore interface
var _ store.BlueprintStore = (*PostgresBlueprintStore)(nil)

// Create implements store.BlueprintStore.Create
// It saves a new brand blueprint to the database.
// Returns store.ErrBlueprintExists if the user already has a blueprint.
// Returns store.ErrInvalidEntity if the user ID doesn't exist.
func (s *PostgresBlueprintStore) Create(ctx context.Context, blueprint *domain.BrandBlueprint) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := blueprint.Validate(); err != nil {
		log.Warn("blueprint validation failed during create",
			slog.String("error", err.Error()),
			slog.String("blueprint_id", blueprint.ID.String()))
		return err
	}

	topics, preferredDays, err := marshalBlueprintLists(blueprint)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO brand_blueprints
			(id, user_id, topics, goal, tone, posting_frequency, preferred_days, ask_before_publish, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		blueprint.ID,
		blueprint.UserID,
		topics,
		blueprint.Goal,
		blueprint.Tone,
		blueprint.PostingFrequency,
		preferredDays,
		blueprint.AskBeforePublish,
		blueprint.CreatedAt,
		blueprint.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("user already has a blueprint",
				slog.String("user_id", blueprint.UserID.String()))
			return MapUniqueViolation(err, store.ErrBlueprintExists)
		}
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during blueprint creation",
				slog.String("user_id", blueprint.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, blueprint.UserID)
		}

		log.Error("failed to create blueprint",
			slog.String("error", err.Error()),
			slog.String("blueprint_id", blueprint.ID.String()),
			slog.String("user_id", blueprint.UserID.String()))
		return MapError(err)
	}

	log.Info("blueprint created successfully",
		slog.String("blueprint_id", blueprint.ID.String()),
		slog.String("user_id", blueprint.UserID.String()))
	return nil
}

// GetByUserID implements store.BlueprintStore.GetByUserID
// It retrieves the blueprint owned by the given user.
// Returns store.ErrBlueprintNotFound if the user has no blueprint.
func (s *PostgresBlueprintStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.BrandBlueprint, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, topics, goal, tone, posting_frequency, preferred_days, ask_before_publish, created_at, updated_at
		FROM brand_blueprints
		WHERE user_id = $1
	`

	var blueprint domain.BrandBlueprint
	var topics, preferredDays []byte

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&blueprint.ID,
		&blueprint.UserID,
		&topics,
		&blueprint.Goal,
		&blueprint.Tone,
		&blueprint.PostingFrequency,
		&preferredDays,
		&blueprint.AskBeforePublish,
		&blueprint.CreatedAt,
		&blueprint.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("blueprint not found",
				slog.String("user_id", userID.String()))
			return nil, store.ErrBlueprintNotFound
		}
		log.Error("failed to get blueprint by user ID",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	if err := unmarshalStringList(topics, &blueprint.Topics); err != nil {
		log.Error("failed to decode blueprint topics",
			slog.String("error", err.Error()),
			slog.String("blueprint_id", blueprint.ID.String()))
		return nil, err
	}
	if err := unmarshalStringList(preferredDays, &blueprint.PreferredDays); err != nil {
		log.Error("failed to decode blueprint preferred days",
			slog.String("error", err.Error()),
			slog.String("blueprint_id", blueprint.ID.String()))
		return nil, err
	}

	return &blueprint, nil
}

// Update implements store.BlueprintStore.Update
// It saves changes to an existing blueprint.
// Returns store.ErrBlueprintNotFound if the blueprint does not exist.
func (s *PostgresBlueprintStore) Update(ctx context.Context, blueprint *domain.BrandBlueprint) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := blueprint.Validate(); err != nil {
		log.Warn("blueprint validation failed during update",
			slog.String("error", err.Error()),
			slog.String("blueprint_id", blueprint.ID.String()))
		return err
	}

	topics, preferredDays, err := marshalBlueprintLists(blueprint)
	if err != nil {
		return err
	}

	blueprint.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE brand_blueprints
		SET topics = $1, goal = $2, tone = $3, posting_frequency = $4,
			preferred_days = $5, ask_before_publish = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		topics,
		blueprint.Goal,
		blueprint.Tone,
		blueprint.PostingFrequency,
		preferredDays,
		blueprint.AskBeforePublish,
		blueprint.UpdatedAt,
		blueprint.ID,
	)

	if err != nil {
		log.Error("failed to update blueprint",
			slog.String("error", err.Error()),
			slog.String("blueprint_id", blueprint.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "blueprint"); err != nil {
		log.Debug("blueprint not found for update",
			slog.String("blueprint_id", blueprint.ID.String()))
		return store.ErrBlueprintNotFound
	}

	log.Info("blueprint updated successfully",
		slog.String("blueprint_id", blueprint.ID.String()),
		slog.String("user_id", blueprint.UserID.String()))
	return nil
}

// WithTx implements store.BlueprintStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresBlueprintStore) WithTx(tx *sql.Tx) store.BlueprintStore {
	return &PostgresBlueprintStore{
		db:     tx,
		logger: s.logger,
	}
}

func marshalBlueprintLists(blueprint *domain.BrandBlueprint) (topics, preferredDays []byte, err error) {
	topics, err = json.Marshal(blueprint.Topics)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode topics: %w", err)
	}
	preferredDays, err = json.Marshal(blueprint.PreferredDays)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode preferred days: %w", err)
	}
	return topics, preferredDays, nil
}

// unmarshalStringList decodes a jsonb column into a string slice,
// normalizing NULL and JSON null to an empty slice.
func unmarshalStringList(data []byte, dst *[]string) error {
	if len(data) == 0 {
		*dst = []string{}
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode string list: %w", err)
	}
	if *dst == nil {
		*dst = []string{}
	}
	return nil
}
