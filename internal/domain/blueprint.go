package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for BrandBlueprint
var (
	ErrEmptyBlueprintID     = errors.New("blueprint ID cannot be empty")
	ErrEmptyBlueprintUserID = errors.New("blueprint user ID cannot be empty")
	ErrEmptyBlueprintTone   = errors.New("blueprint tone cannot be empty")
	ErrEmptyBlueprintGoal   = errors.New("blueprint goal cannot be empty")
)

// BrandBlueprint holds a user's stored content-voice preferences, captured
// during onboarding and merged into every AI generation request.
type BrandBlueprint struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Topics           []string  `json:"topics"`
	Goal             string    `json:"goal"`
	Tone             string    `json:"tone"`
	PostingFrequency string    `json:"posting_frequency"`
	PreferredDays    []string  `json:"preferred_days"`
	AskBeforePublish bool      `json:"ask_before_publish"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewBrandBlueprint creates a new BrandBlueprint for the given user.
// It generates a new UUID and sets the timestamps.
// Returns an error if validation fails.
func NewBrandBlueprint(
	userID uuid.UUID,
	topics []string,
	goal, tone, postingFrequency string,
	preferredDays []string,
	askBeforePublish bool,
) (*BrandBlueprint, error) {
	if topics == nil {
		topics = []string{}
	}
	if preferredDays == nil {
		preferredDays = []string{}
	}

	bp := &BrandBlueprint{
		ID:               uuid.New(),
		UserID:           userID,
		Topics:           topics,
		Goal:             goal,
		Tone:             tone,
		PostingFrequency: postingFrequency,
		PreferredDays:    preferredDays,
		AskBeforePublish: askBeforePublish,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}

	if err := bp.Validate(); err != nil {
		return nil, err
	}

	return bp, nil
}

// Validate checks if the BrandBlueprint has valid data.
// Returns an error if any field fails validation.
func (b *BrandBlueprint) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBlueprintID
	}

	if b.UserID == uuid.Nil {
		return ErrEmptyBlueprintUserID
	}

	if b.Tone == "" {
		return ErrEmptyBlueprintTone
	}

	if b.Goal == "" {
		return ErrEmptyBlueprintGoal
	}

	return nil
}
