package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewPost(t *testing.T) {
	userID := uuid.New()

	post, err := NewPost(userID, "Leadership is about making tough decisions", []string{"Leadership"}, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if post.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if post.Status != PostStatusDraft {
		t.Errorf("Expected status %s, got %s", PostStatusDraft, post.Status)
	}

	if post.Source != PostSourceManual {
		t.Errorf("Expected source %s, got %s", PostSourceManual, post.Source)
	}

	if post.Hashtags == nil {
		t.Error("Expected non-nil hashtags slice")
	}
}

func TestNewPostValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		userID  uuid.UUID
		content string
		source  PostSource
		wantErr error
	}{
		{"empty user ID", uuid.Nil, "some content", PostSourceManual, ErrEmptyPostUserID},
		{"empty content", uuid.New(), "", PostSourceManual, ErrEmptyPostText},
		{"bad source", uuid.New(), "some content", PostSource("imported"), ErrInvalidSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPost(tt.userID, tt.content, nil, tt.source)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPostSchedule(t *testing.T) {
	post, err := NewPost(uuid.New(), "draft text", nil, PostSourceManual)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	at := time.Now().UTC().Add(24 * time.Hour)
	post.Schedule(at)

	if post.Status != PostStatusScheduled {
		t.Errorf("Expected status %s, got %s", PostStatusScheduled, post.Status)
	}

	if post.ScheduledFor == nil || !post.ScheduledFor.Equal(at) {
		t.Errorf("Expected scheduled_for %v, got %v", at, post.ScheduledFor)
	}
}

func TestPostPublish(t *testing.T) {
	post, err := NewPost(uuid.New(), "draft text", nil, PostSourceAIGenerated)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	post.Publish()

	if post.Status != PostStatusPublished {
		t.Errorf("Expected status %s, got %s", PostStatusPublished, post.Status)
	}

	if post.PublishedAt == nil || post.PublishedAt.IsZero() {
		t.Error("Expected PublishedAt to be set")
	}
}
