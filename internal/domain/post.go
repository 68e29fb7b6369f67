package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the lifecycle state of a post draft.
type PostStatus string

// Possible post status values
const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
)

// PostSource records how a post came into existence.
type PostSource string

// Possible post source values
const (
	PostSourceManual      PostSource = "manual"
	PostSourceAIGenerated PostSource = "ai_generated"
	PostSourceTrending    PostSource = "trending_news"
)

// Common validation errors for Post
var (
	ErrEmptyPostID     = errors.New("post ID cannot be empty")
	ErrEmptyPostUserID = errors.New("post user ID cannot be empty")
	ErrEmptyPostText   = errors.New("post content cannot be empty")
	ErrInvalidSource   = errors.New("invalid post source")
)

// Post represents a social-media post draft owned by a user. It tracks the
// draft content, its hashtags, and its scheduling/publication state.
type Post struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Content      string     `json:"content"`
	Hashtags     []string   `json:"hashtags"`
	Status       PostStatus `json:"status"`
	Source       PostSource `json:"source_type"`
	ImageURL     string     `json:"image_url,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewPost creates a new draft Post with the given owner, content, hashtags
// and source. It generates a new UUID and sets the timestamps.
// Returns an error if validation fails.
func NewPost(userID uuid.UUID, content string, hashtags []string, source PostSource) (*Post, error) {
	if hashtags == nil {
		hashtags = []string{}
	}
	if source == "" {
		source = PostSourceManual
	}

	post := &Post{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		Hashtags:  hashtags,
		Status:    PostStatusDraft,
		Source:    source,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyPostUserID
	}

	if p.Content == "" {
		return ErrEmptyPostText
	}

	if !isValidPostStatus(p.Status) {
		return ErrInvalidPostStatus
	}

	if !isValidPostSource(p.Source) {
		return ErrInvalidSource
	}

	return nil
}

// Schedule marks the post for future publication at the given time and
// updates the UpdatedAt timestamp. The caller validates that the time is in
// the future.
func (p *Post) Schedule(at time.Time) {
	p.Status = PostStatusScheduled
	p.ScheduledFor = &at
	p.UpdatedAt = time.Now().UTC()
}

// Publish marks the post as published and records the publication time.
func (p *Post) Publish() {
	now := time.Now().UTC()
	p.Status = PostStatusPublished
	p.PublishedAt = &now
	p.UpdatedAt = now
}

// isValidPostStatus checks if the given status is a valid PostStatus.
func isValidPostStatus(status PostStatus) bool {
	switch status {
	case PostStatusDraft, PostStatusScheduled, PostStatusPublished:
		return true
	default:
		return false
	}
}

// isValidPostSource checks if the given source is a valid PostSource.
func isValidPostSource(source PostSource) bool {
	switch source {
	case PostSourceManual, PostSourceAIGenerated, PostSourceTrending:
		return true
	default:
		return false
	}
}
