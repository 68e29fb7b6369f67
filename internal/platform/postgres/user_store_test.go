package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/platform/postgres"
	"github.com/postcraft/postcraft-api/internal/store"
)

const userColumns = "id, email, hashed_password, created_at, updated_at"

func newUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("user@example.com", "correct-horse-battery")
	require.NoError(t, err)
	return user
}

func TestUserStoreCreate(t *testing.T) {
	t.Run("hashes password and inserts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO users").
			WillReturnResult(sqlmock.NewResult(0, 1))

		user := newUser(t)
		s := postgres.NewPostgresUserStore(db, nil)
		require.NoError(t, s.Create(context.Background(), user))

		// The plaintext password must never reach the database
		assert.Empty(t, user.Password)
		require.NotEmpty(t, user.HashedPassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(user.HashedPassword), []byte("correct-horse-battery")))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		s := postgres.NewPostgresUserStore(db, nil)
		err = s.Create(context.Background(), newUser(t))
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("invalid user is rejected before insert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		user := newUser(t)
		user.Email = "not-an-email"

		s := postgres.NewPostgresUserStore(db, nil)
		assert.Error(t, s.Create(context.Background(), user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserStoreGetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		id := uuid.New()
		now := time.Now().UTC()
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("user@example.com").
			WillReturnRows(sqlmock.NewRows(splitColumns(userColumns)).
				AddRow(id.String(), "user@example.com", "$2a$10$hash", now, now))

		s := postgres.NewPostgresUserStore(db, nil)
		user, err := s.GetByEmail(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "user@example.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.HashedPassword)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT (.+) FROM users").
			WillReturnRows(sqlmock.NewRows(splitColumns(userColumns)))

		s := postgres.NewPostgresUserStore(db, nil)
		_, err = s.GetByEmail(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserStoreUpdate(t *testing.T) {
	t.Run("rehashes changed password", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE users").
			WillReturnResult(sqlmock.NewResult(0, 1))

		user := newUser(t)
		user.Password = "a-brand-new-password"
		s := postgres.NewPostgresUserStore(db, nil)
		require.NoError(t, s.Update(context.Background(), user))

		assert.Empty(t, user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(user.HashedPassword), []byte("a-brand-new-password")))
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE users").
			WillReturnResult(sqlmock.NewResult(0, 0))

		user := newUser(t)
		user.Password = ""
		user.HashedPassword = "$2a$10$hash"
		s := postgres.NewPostgresUserStore(db, nil)
		err = s.Update(context.Background(), user)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserStoreDelete(t *testing.T) {
	t.Run("deletes existing user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("DELETE FROM users").
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := postgres.NewPostgresUserStore(db, nil)
		assert.NoError(t, s.Delete(context.Background(), uuid.New()))
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("DELETE FROM users").
			WillReturnResult(sqlmock.NewResult(0, 0))

		s := postgres.NewPostgresUserStore(db, nil)
		err = s.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("database error passes through", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("DELETE FROM users").
			WillReturnError(errors.New("connection refused"))

		s := postgres.NewPostgresUserStore(db, nil)
		err = s.Delete(context.Background(), uuid.New())
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrUserNotFound)
	})
}
