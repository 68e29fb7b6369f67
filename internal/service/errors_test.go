package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("ErrNotOwned", func(t *testing.T) {
		assert.Equal(t, "resource is owned by another user", ErrNotOwned.Error())
		assert.True(t, errors.Is(ErrNotOwned, ErrNotOwned))
	})

	t.Run("ErrEmptyText", func(t *testing.T) {
		assert.Equal(t, "text cannot be empty", ErrEmptyText.Error())
	})

	t.Run("ErrScheduleTimeInPast", func(t *testing.T) {
		assert.Equal(t, "scheduled time must be in the future", ErrScheduleTimeInPast.Error())
	})

	t.Run("wrapped sentinels survive errors.Is", func(t *testing.T) {
		wrapped := fmt.Errorf("schedule post: %w", ErrScheduleTimeInPast)
		assert.True(t, errors.Is(wrapped, ErrScheduleTimeInPast))
		assert.False(t, errors.Is(wrapped, ErrNotOwned))
	})
}

func TestServiceErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "post error without cause",
			err: &PostServiceError{
				Operation: "delete_post",
				Message:   "failed to delete post",
			},
			expected: "post service delete_post failed: failed to delete post",
		},
		{
			name: "post error with cause",
			err: &PostServiceError{
				Operation: "get_post",
				Message:   "lookup failed",
				Err:       ErrNotOwned,
			},
			expected: "post service get_post failed: lookup failed: resource is owned by another user",
		},
		{
			name: "blueprint error with cause",
			err: &BlueprintServiceError{
				Operation: "save_blueprint",
				Message:   "upsert failed",
				Err:       errors.New("boom"),
			},
			expected: "blueprint service save_blueprint failed: upsert failed: boom",
		},
		{
			name: "generation error without cause",
			err: &GenerationServiceError{
				Operation: "assist",
				Message:   "provider exhausted",
			},
			expected: "generation service assist failed: provider exhausted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying failure")

	tests := []struct {
		name string
		err  error
	}{
		{
			name: "post error",
			err:  &PostServiceError{Operation: "update_post", Message: "save failed", Err: cause},
		},
		{
			name: "blueprint error",
			err:  &BlueprintServiceError{Operation: "get_blueprint", Message: "lookup failed", Err: cause},
		},
		{
			name: "generation error",
			err:  &GenerationServiceError{Operation: "assist", Message: "call failed", Err: cause},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, cause))
		})
	}
}
