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

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

const postColumns = `id, user_id, content, hashtags, status, source_type, image_url, scheduled_for, published_at, created_at, updated_at`

// Create implements store.PostStore.Create
// It saves a new post to the database.
// Returns store.ErrInvalidEntity if the user ID doesn't exist.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	hashtags, err := json.Marshal(post.Hashtags)
	if err != nil {
		return fmt.Errorf("failed to encode hashtags: %w", err)
	}

	query := `
		INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.UserID,
		post.Content,
		hashtags,
		post.Status,
		post.Source,
		nullString(post.ImageURL),
		post.ScheduledFor,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.String("post_id", post.ID.String()),
				slog.String("user_id", post.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, post.UserID)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()),
			slog.String("user_id", post.UserID.String()))
		return MapError(err)
	}

	log.Info("post created successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("user_id", post.UserID.String()),
		slog.String("status", string(post.Status)))
	return nil
}

// GetByID implements store.PostStore.GetByID
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE id = $1
	`

	post, err := scanPost(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, MapError(err)
	}

	return post, nil
}

// FindByUserID implements store.PostStore.FindByUserID
// It retrieves the user's posts ordered newest first.
// Returns an empty slice if the user has no posts.
func (s *PostgresPostStore) FindByUserID(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 20 // Default page size
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		log.Error("failed to query posts by user ID",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Error("failed to scan post row",
				slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if posts == nil {
		posts = []*domain.Post{}
	}

	log.Debug("found posts by user ID",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(posts)))
	return posts, nil
}

// Update implements store.PostStore.Update
// It saves changes to an existing post.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	hashtags, err := json.Marshal(post.Hashtags)
	if err != nil {
		return fmt.Errorf("failed to encode hashtags: %w", err)
	}

	post.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE posts
		SET content = $1, hashtags = $2, status = $3, source_type = $4,
			image_url = $5, scheduled_for = $6, published_at = $7, updated_at = $8
		WHERE id = $9
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		post.Content,
		hashtags,
		post.Status,
		post.Source,
		nullString(post.ImageURL),
		post.ScheduledFor,
		post.PublishedAt,
		post.UpdatedAt,
		post.ID,
	)

	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "post"); err != nil {
		log.Debug("post not found for update",
			slog.String("post_id", post.ID.String()))
		return store.ErrPostNotFound
	}

	log.Info("post updated successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("status", string(post.Status)))
	return nil
}

// Delete implements store.PostStore.Delete
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "post"); err != nil {
		log.Debug("post not found for delete",
			slog.String("post_id", id.String()))
		return store.ErrPostNotFound
	}

	log.Info("post deleted successfully",
		slog.String("post_id", id.String()))
	return nil
}

// WithTx implements store.PostStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (*domain.Post, error) {
	var post domain.Post
	var hashtags []byte
	var status, source string
	var imageURL sql.NullString

	err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Content,
		&hashtags,
		&status,
		&source,
		&imageURL,
		&post.ScheduledFor,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	post.Status = domain.PostStatus(status)
	post.Source = domain.PostSource(source)
	post.ImageURL = imageURL.String
	if err := unmarshalStringList(hashtags, &post.Hashtags); err != nil {
		return nil, err
	}

	return &post, nil
}

// nullString maps an empty string to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
