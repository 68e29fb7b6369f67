package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/platform/logger"
	"github.com/postcraft/postcraft-api/internal/store"
)

// Image upload limits, matching what the frontend is told to enforce.
const (
	maxImageSizeBytes = 2 * 1024 * 1024
)

// allowedImageTypes lists the accepted content types for post images.
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// PostService provides post-related operations. Every operation checks that
// the post belongs to the requesting user and returns ErrNotOwned otherwise.
type PostService interface {
	// CreatePost creates a new draft post for the user.
	CreatePost(ctx context.Context, userID uuid.UUID, content string, hashtags []string, source domain.PostSource) (*domain.Post, error)

	// GetPost retrieves one of the user's posts.
	GetPost(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error)

	// ListPosts retrieves the user's posts, newest first.
	ListPosts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Post, error)

	// UpdatePost replaces the content and hashtags of one of the user's posts.
	UpdatePost(ctx context.Context, userID, postID uuid.UUID, content string, hashtags []string) (*domain.Post, error)

	// DeletePost removes one of the user's posts.
	DeletePost(ctx context.Context, userID, postID uuid.UUID) error

	// SchedulePost marks a post for publication at a future time.
	// Returns ErrScheduleTimeInPast when the time is not in the future.
	SchedulePost(ctx context.Context, userID, postID uuid.UUID, at time.Time) (*domain.Post, error)

	// PublishPost marks a post as published now.
	PublishPost(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error)

	// AttachImage stores an uploaded image and records its public URL on the
	// post. Returns ErrImageTooLarge, ErrUnsupportedImageType, or
	// ErrImageStorageDisabled as appropriate.
	AttachImage(ctx context.Context, userID, postID uuid.UUID, contentType string, data []byte) (*domain.Post, error)
}

// PostServiceError wraps errors from the post service with context.
type PostServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for PostServiceError.
func (e *PostServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("post service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("post service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PostServiceError) Unwrap() error {
	return e.Err
}

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	posts   store.PostStore
	objects store.ObjectStore // nil when image storage is not configured
	logger  *slog.Logger

	// timeFunc returns the current time. Injectable for testing.
	timeFunc func() time.Time
}

// NewPostService creates a new PostService. objects may be nil, in which
// case image uploads are rejected with ErrImageStorageDisabled.
func NewPostService(posts store.PostStore, objects store.ObjectStore, log *slog.Logger) (PostService, error) {
	if posts == nil {
		return nil, &PostServiceError{
			Operation: "create_service",
			Message:   "post store cannot be nil",
		}
	}
	if log == nil {
		log = slog.Default()
	}

	return &postServiceImpl{
		posts:    posts,
		objects:  objects,
		logger:   log.With("component", "post_service"),
		timeFunc: time.Now,
	}, nil
}

// CreatePost implements PostService.
func (s *postServiceImpl) CreatePost(
	ctx context.Context,
	userID uuid.UUID,
	content string,
	hashtags []string,
	source domain.PostSource,
) (*domain.Post, error) {
	post, err := domain.NewPost(userID, content, hashtags, source)
	if err != nil {
		return nil, err
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, &PostServiceError{
			Operation: "create_post",
			Message:   "failed to save post",
			Err:       err,
		}
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.InfoContext(ctx, "post created",
		slog.String("post_id", post.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("source", string(post.Source)))

	return post, nil
}

// GetPost implements PostService.
func (s *postServiceImpl) GetPost(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error) {
	return s.getOwned(ctx, userID, postID)
}

// ListPosts implements PostService.
func (s *postServiceImpl) ListPosts(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.Post, error) {
	posts, err := s.posts.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, &PostServiceError{
			Operation: "list_posts",
			Message:   "failed to list posts",
			Err:       err,
		}
	}
	return posts, nil
}

// UpdatePost implements PostService.
func (s *postServiceImpl) UpdatePost(
	ctx context.Context,
	userID, postID uuid.UUID,
	content string,
	hashtags []string,
) (*domain.Post, error) {
	post, err := s.getOwned(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post.Content = content
	if hashtags != nil {
		post.Hashtags = hashtags
	}
	post.UpdatedAt = s.timeFunc().UTC()

	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, &PostServiceError{
			Operation: "update_post",
			Message:   "failed to update post",
			Err:       err,
		}
	}

	return post, nil
}

// DeletePost implements PostService.
func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, postID); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return &PostServiceError{
			Operation: "delete_post",
			Message:   "failed to delete post",
			Err:       err,
		}
	}

	return nil
}

// SchedulePost implements PostService.
func (s *postServiceImpl) SchedulePost(
	ctx context.Context,
	userID, postID uuid.UUID,
	at time.Time,
) (*domain.Post, error) {
	if !at.After(s.timeFunc()) {
		return nil, ErrScheduleTimeInPast
	}

	post, err := s.getOwned(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post.Schedule(at.UTC())

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, &PostServiceError{
			Operation: "schedule_post",
			Message:   "failed to schedule post",
			Err:       err,
		}
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.InfoContext(ctx, "post scheduled",
		slog.String("post_id", postID.String()),
		slog.Time("scheduled_for", at))

	return post, nil
}

// PublishPost implements PostService.
func (s *postServiceImpl) PublishPost(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.getOwned(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post.Publish()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, &PostServiceError{
			Operation: "publish_post",
			Message:   "failed to publish post",
			Err:       err,
		}
	}

	return post, nil
}

// AttachImage implements PostService.
func (s *postServiceImpl) AttachImage(
	ctx context.Context,
	userID, postID uuid.UUID,
	contentType string,
	data []byte,
) (*domain.Post, error) {
	if s.objects == nil {
		return nil, ErrImageStorageDisabled
	}
	if len(data) > maxImageSizeBytes {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrImageTooLarge, len(data), maxImageSizeBytes)
	}
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImageType, contentType)
	}

	post, err := s.getOwned(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s.%s", userID, postID, ext)
	url, err := s.objects.Upload(ctx, path, contentType, data)
	if err != nil {
		return nil, &PostServiceError{
			Operation: "attach_image",
			Message:   "failed to upload image",
			Err:       err,
		}
	}

	post.ImageURL = url
	post.UpdatedAt = s.timeFunc().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, &PostServiceError{
			Operation: "attach_image",
			Message:   "failed to record image URL",
			Err:       err,
		}
	}

	return post, nil
}

// getOwned fetches a post and verifies it belongs to the user.
func (s *postServiceImpl) getOwned(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrNotOwned
	}
	return post, nil
}
