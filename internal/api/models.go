package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/postcraft/postcraft-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// BlueprintRequest defines the payload for creating or replacing the
// authenticated user's brand blueprint.
type BlueprintRequest struct {
	Topics           []string `json:"topics"             validate:"required,min=1,dive,min=1"`
	Goal             string   `json:"goal"               validate:"required"`
	Tone             string   `json:"tone"               validate:"required"`
	PostingFrequency string   `json:"posting_frequency"  validate:"omitempty"`
	PreferredDays    []string `json:"preferred_days"     validate:"omitempty,dive,min=1"`
	AskBeforePublish bool     `json:"ask_before_publish"`
}

// CreatePostRequest defines the payload for creating a post draft.
type CreatePostRequest struct {
	Content  string   `json:"content"     validate:"required,min=1"`
	Hashtags []string `json:"hashtags"    validate:"omitempty,dive,min=1"`
	Source   string   `json:"source_type" validate:"omitempty,oneof=manual ai_generated trending_news"`
}

// UpdatePostRequest defines the payload for editing a post draft.
type UpdatePostRequest struct {
	Content  string   `json:"content"  validate:"required,min=1"`
	Hashtags []string `json:"hashtags" validate:"omitempty,dive,min=1"`
}

// SchedulePostRequest defines the payload for scheduling a post.
type SchedulePostRequest struct {
	ScheduledFor time.Time `json:"scheduled_for" validate:"required"`
}

// PostListResponse wraps a page of the user's posts.
type PostListResponse struct {
	Posts  []*domain.Post `json:"posts"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// AssistRequest defines the payload for the AI writing assistant endpoint.
type AssistRequest struct {
	Action string `json:"action" validate:"required"`
	Text   string `json:"text"   validate:"required"`
}

// AssistResponse defines the successful response for the AI writing
// assistant. All three fields are always present; hook_suggestion is the
// empty string for actions that produce no hook.
type AssistResponse struct {
	Content        string   `json:"content"`
	Hashtags       []string `json:"hashtags"`
	HookSuggestion string   `json:"hook_suggestion"`
}
