package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/mocks"
	"github.com/postcraft/postcraft-api/internal/service"
	"github.com/postcraft/postcraft-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlueprintService(t *testing.T, blueprints *mocks.MockBlueprintStore) service.BlueprintService {
	t.Helper()
	// No db: the mock store is not transactional.
	svc, err := service.NewBlueprintService(blueprints, nil, nil)
	require.NoError(t, err)
	return svc
}

func TestSaveBlueprintCreatesWhenMissing(t *testing.T) {
	var created *domain.BrandBlueprint
	blueprints := &mocks.MockBlueprintStore{
		CreateFn: func(ctx context.Context, bp *domain.BrandBlueprint) error {
			created = bp
			return nil
		},
	}
	svc := newBlueprintService(t, blueprints)

	userID := uuid.New()
	saved, err := svc.SaveBlueprint(context.Background(), userID, service.BlueprintInput{
		Topics: []string{"AI"},
		Goal:   "Become a Top Voice",
		Tone:   "Warm",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, saved.ID, created.ID)
	assert.Equal(t, userID, created.UserID)
}

func TestSaveBlueprintUpdatesExisting(t *testing.T) {
	userID := uuid.New()
	existing, err := domain.NewBrandBlueprint(userID, []string{"Old"}, "Old goal", "Old tone", "", nil, false)
	require.NoError(t, err)

	var updated *domain.BrandBlueprint
	blueprints := &mocks.MockBlueprintStore{
		GetByUserIDFn: func(ctx context.Context, id uuid.UUID) (*domain.BrandBlueprint, error) {
			return existing, nil
		},
		CreateFn: func(ctx context.Context, bp *domain.BrandBlueprint) error {
			t.Fatal("Create must not be called when a blueprint exists")
			return nil
		},
		UpdateFn: func(ctx context.Context, bp *domain.BrandBlueprint) error {
			updated = bp
			return nil
		},
	}
	svc := newBlueprintService(t, blueprints)

	saved, err := svc.SaveBlueprint(context.Background(), userID, service.BlueprintInput{
		Topics: []string{"New"},
		Goal:   "New goal",
		Tone:   "New tone",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// The existing row's identity and creation time are preserved.
	assert.Equal(t, existing.ID, saved.ID)
	assert.Equal(t, existing.CreatedAt, saved.CreatedAt)
	assert.Equal(t, "New tone", updated.Tone)
}

func TestSaveBlueprintInvalidInput(t *testing.T) {
	svc := newBlueprintService(t, &mocks.MockBlueprintStore{})

	_, err := svc.SaveBlueprint(context.Background(), uuid.New(), service.BlueprintInput{
		Goal: "goal only",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyBlueprintTone)
}

func TestGetBlueprint(t *testing.T) {
	userID := uuid.New()
	existing, err := domain.NewBrandBlueprint(userID, nil, "goal", "tone", "", nil, false)
	require.NoError(t, err)

	blueprints := &mocks.MockBlueprintStore{
		GetByUserIDFn: func(ctx context.Context, id uuid.UUID) (*domain.BrandBlueprint, error) {
			if id == userID {
				return existing, nil
			}
			return nil, store.ErrBlueprintNotFound
		},
	}
	svc := newBlueprintService(t, blueprints)

	got, err := svc.GetBlueprint(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)

	_, err = svc.GetBlueprint(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrBlueprintNotFound)
}

func TestGetBlueprintWrapsUnexpectedErrors(t *testing.T) {
	blueprints := &mocks.MockBlueprintStore{
		GetByUserIDFn: func(ctx context.Context, id uuid.UUID) (*domain.BrandBlueprint, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newBlueprintService(t, blueprints)

	_, err := svc.GetBlueprint(context.Background(), uuid.New())
	require.Error(t, err)

	var svcErr *service.BlueprintServiceError
	assert.ErrorAs(t, err, &svcErr)
}
