package api

import (
	"log/slog"
	"net/http"

	"github.com/postcraft/postcraft-api/internal/api/shared"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/service"
)

// AssistHandler handles AI writing assistance requests.
type AssistHandler struct {
	generationService service.GenerationService
	logger            *slog.Logger
}

// NewAssistHandler creates a new AssistHandler.
func NewAssistHandler(generationService service.GenerationService, logger *slog.Logger) *AssistHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssistHandler{
		generationService: generationService,
		logger:            logger.With(slog.String("component", "assist_handler")),
	}
}

// Assist handles POST /ai/assist. It runs one of the writing actions over the
// user's draft text and returns the structured result.
func (h *AssistHandler) Assist(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	var req AssistRequest
	if !parseAndValidateRequest(w, r, &req, h.logger) {
		return
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.generationService.Assist(r.Context(), userID, action, req.Text)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AssistResponse{
		Content:        result.Content,
		Hashtags:       result.Hashtags,
		HookSuggestion: result.Hook,
	})
}
