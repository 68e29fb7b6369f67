package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store.
	// It handles domain validation internally.
	// Returns validation errors from the domain Post if data is invalid.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// FindByUserID retrieves the user's posts ordered by creation time,
	// newest first. Returns an empty slice if the user has no posts.
	// Can limit the number of results and paginate through offset.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Post, error)

	// Update saves changes to an existing post.
	// Returns ErrPostNotFound if the post does not exist.
	// Returns validation errors if the post data is invalid.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post from the store by its ID.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PostStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) PostStore
}
