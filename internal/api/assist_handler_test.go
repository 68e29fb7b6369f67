package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postcraft/postcraft-api/internal/api/shared"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/generation"
	"github.com/postcraft/postcraft-api/internal/service"
)

// mockGenerationService implements service.GenerationService with an
// overridable function.
type mockGenerationService struct {
	AssistFn func(ctx context.Context, userID uuid.UUID, action domain.Action, text string) (*generation.Result, error)
}

func (m *mockGenerationService) Assist(
	ctx context.Context,
	userID uuid.UUID,
	action domain.Action,
	text string,
) (*generation.Result, error) {
	return m.AssistFn(ctx, userID, action, text)
}

var _ service.GenerationService = (*mockGenerationService)(nil)

func TestAssist(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name        string
		payload     string
		result      *generation.Result
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:    "continue action",
			payload: `{"action":"continue","text":"Shipping small is the fastest way to learn."}`,
			result: &generation.Result{
				Content:  "Shipping small is the fastest way to learn. Every release teaches you something a roadmap never will.",
				Hashtags: []string{"#buildinpublic", "#shipping"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "engagement action returns hook",
			payload: `{"action":"engagement","text":"We migrated our API to Go last month."}`,
			result: &generation.Result{
				Content:  "We migrated our API to Go last month and cut p99 latency in half.",
				Hashtags: []string{"#golang"},
				Hook:     "What would you do with half your latency back?",
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "unknown action",
			payload:     `{"action":"summarize","text":"Some draft"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Unknown assist action",
		},
		{
			name:        "missing text",
			payload:     `{"action":"rephrase"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid Text",
		},
		{
			name:        "whitespace-only text",
			payload:     `{"action":"rephrase","text":"   "}`,
			serviceErr:  service.ErrEmptyText,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Text cannot be empty",
		},
		{
			name:        "provider unavailable",
			payload:     `{"action":"grammar","text":"their going to love this"}`,
			serviceErr:  generation.ErrServiceUnavailable,
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "AI service temporarily unavailable",
		},
		{
			name:        "unparseable model output",
			payload:     `{"action":"shorter","text":"A very long draft that rambles on."}`,
			serviceErr:  generation.ErrInvalidModelOutput,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "AI returned invalid response format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockGenerationService{
				AssistFn: func(ctx context.Context, uid uuid.UUID, action domain.Action, text string) (*generation.Result, error) {
					assert.Equal(t, userID, uid)
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return tt.result, nil
				},
			}
			handler := NewAssistHandler(svc, nil)

			recorder := httptest.NewRecorder()
			handler.Assist(recorder, authedRequest(http.MethodPost, "/assist", []byte(tt.payload), userID))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var got AssistResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
				assert.Equal(t, tt.result.Content, got.Content)
				assert.Equal(t, tt.result.Hashtags, got.Hashtags)
				assert.Equal(t, tt.result.Hook, got.HookSuggestion)
			} else {
				var errResp shared.ErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&errResp))
				assert.Contains(t, errResp.Error, tt.wantMessage)
			}
		})
	}
}

// The response contract always carries all three fields; actions that
// produce no hook return it as an empty string rather than dropping it.
func TestAssistHookPresentWhenEmpty(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &mockGenerationService{
		AssistFn: func(ctx context.Context, uid uuid.UUID, action domain.Action, text string) (*generation.Result, error) {
			return &generation.Result{Content: "Tighter version.", Hashtags: []string{}}, nil
		},
	}
	handler := NewAssistHandler(svc, nil)

	recorder := httptest.NewRecorder()
	handler.Assist(recorder, authedRequest(
		http.MethodPost,
		"/assist",
		[]byte(`{"action":"shorter","text":"A long draft."}`),
		userID,
	))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"hook_suggestion":""`)
}

func TestAssistRequiresAuthentication(t *testing.T) {
	t.Parallel()

	handler := NewAssistHandler(&mockGenerationService{}, nil)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assist", nil)
	handler.Assist(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
