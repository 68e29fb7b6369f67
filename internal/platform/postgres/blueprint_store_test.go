package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/platform/postgres"
	"github.com/postcraft/postcraft-api/internal/store"
)

const blueprintColumns = "id, user_id, topics, goal, tone, posting_frequency, preferred_days, ask_before_publish, created_at, updated_at"

func newBlueprint(t *testing.T) *domain.BrandBlueprint {
	t.Helper()
	blueprint, err := domain.NewBrandBlueprint(
		uuid.New(),
		[]string{"Fintech", "Payments"},
		"Win enterprise deals",
		"Bold",
		"weekly",
		[]string{"monday", "thursday"},
		true,
	)
	require.NoError(t, err)
	return blueprint
}

func TestBlueprintStoreCreate(t *testing.T) {
	t.Run("inserts blueprint", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO brand_blueprints").
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := postgres.NewPostgresBlueprintStore(db, nil)
		assert.NoError(t, s.Create(context.Background(), newBlueprint(t)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second blueprint for same user is rejected", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO brand_blueprints").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "brand_blueprints_user_id_key"})

		s := postgres.NewPostgresBlueprintStore(db, nil)
		err = s.Create(context.Background(), newBlueprint(t))
		assert.ErrorIs(t, err, store.ErrBlueprintExists)
	})

	t.Run("unknown user maps to invalid entity", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO brand_blueprints").
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "brand_blueprints_user_id_fkey"})

		s := postgres.NewPostgresBlueprintStore(db, nil)
		err = s.Create(context.Background(), newBlueprint(t))
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestBlueprintStoreGetByUserID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		id := uuid.New()
		userID := uuid.New()
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT (.+) FROM brand_blueprints").
			WillReturnRows(sqlmock.NewRows(splitColumns(blueprintColumns)).
				AddRow(id.String(), userID.String(), []byte(`["Fintech","Payments"]`),
					"Win enterprise deals", "Bold", "weekly", []byte(`["monday"]`), true, now, now))

		s := postgres.NewPostgresBlueprintStore(db, nil)
		blueprint, err := s.GetByUserID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, id, blueprint.ID)
		assert.Equal(t, userID, blueprint.UserID)
		assert.Equal(t, []string{"Fintech", "Payments"}, blueprint.Topics)
		assert.Equal(t, "Bold", blueprint.Tone)
		assert.Equal(t, []string{"monday"}, blueprint.PreferredDays)
		assert.True(t, blueprint.AskBeforePublish)
	})

	t.Run("null lists normalize to empty slices", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		userID := uuid.New()
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT (.+) FROM brand_blueprints").
			WillReturnRows(sqlmock.NewRows(splitColumns(blueprintColumns)).
				AddRow(uuid.New().String(), userID.String(), nil,
					"Build thought leadership", "Professional", "", nil, false, now, now))

		s := postgres.NewPostgresBlueprintStore(db, nil)
		blueprint, err := s.GetByUserID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, []string{}, blueprint.Topics)
		assert.Equal(t, []string{}, blueprint.PreferredDays)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT (.+) FROM brand_blueprints").
			WillReturnRows(sqlmock.NewRows(splitColumns(blueprintColumns)))

		s := postgres.NewPostgresBlueprintStore(db, nil)
		_, err = s.GetByUserID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrBlueprintNotFound)
	})
}

func TestBlueprintStoreUpdate(t *testing.T) {
	t.Run("updates existing blueprint", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE brand_blueprints").
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := postgres.NewPostgresBlueprintStore(db, nil)
		assert.NoError(t, s.Update(context.Background(), newBlueprint(t)))
	})

	t.Run("missing blueprint", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE brand_blueprints").
			WillReturnResult(sqlmock.NewResult(0, 0))

		s := postgres.NewPostgresBlueprintStore(db, nil)
		err = s.Update(context.Background(), newBlueprint(t))
		assert.ErrorIs(t, err, store.ErrBlueprintNotFound)
	})
}
