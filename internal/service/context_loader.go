package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/generation"
	"github.com/postcraft/postcraft-api/internal/platform/logger"
	"github.com/postcraft/postcraft-api/internal/store"
)

// BrandContextLoader supplies the personalization context merged into every
// generation prompt.
type BrandContextLoader interface {
	// Load returns the user's brand context. It never fails outward: when
	// the user has no blueprint, or the lookup fails for any reason, it
	// returns the neutral default context instead.
	Load(ctx context.Context, userID uuid.UUID) generation.BrandContext
}

// blueprintContextLoader loads the context from the blueprint store.
type blueprintContextLoader struct {
	blueprints store.BlueprintStore
	logger     *slog.Logger
}

// NewBrandContextLoader creates a BrandContextLoader backed by the given
// blueprint store.
func NewBrandContextLoader(blueprints store.BlueprintStore, log *slog.Logger) (BrandContextLoader, error) {
	if blueprints == nil {
		return nil, &GenerationServiceError{
			Operation: "create_context_loader",
			Message:   "blueprint store cannot be nil",
		}
	}
	if log == nil {
		log = slog.Default()
	}

	return &blueprintContextLoader{
		blueprints: blueprints,
		logger:     log.With("component", "brand_context_loader"),
	}, nil
}

// Load implements BrandContextLoader. Stored fields are mapped into the
// context with the topics joined into a comma-separated phrase; any field
// absent in storage keeps its default.
func (l *blueprintContextLoader) Load(ctx context.Context, userID uuid.UUID) generation.BrandContext {
	log := logger.FromContextOrDefault(ctx, l.logger)

	blueprint, err := l.blueprints.GetByUserID(ctx, userID)
	if err != nil {
		// Generation must degrade gracefully to an unpersonalized default
		// rather than block the user before onboarding is complete.
		if store.IsNotFoundError(err) {
			log.WarnContext(ctx, "brand blueprint not found, using defaults",
				slog.String("user_id", userID.String()))
		} else {
			log.ErrorContext(ctx, "brand blueprint lookup failed, using defaults",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
		return generation.DefaultBrandContext()
	}

	brand := generation.DefaultBrandContext()
	if blueprint.Tone != "" {
		brand.Tone = blueprint.Tone
	}
	if topics := strings.Join(blueprint.Topics, ", "); topics != "" {
		brand.Topics = topics
	}
	if blueprint.Goal != "" {
		brand.Goal = blueprint.Goal
	}

	return brand
}
