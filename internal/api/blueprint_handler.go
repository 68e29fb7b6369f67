package api

import (
	"log/slog"
	"net/http"

	"github.com/postcraft/postcraft-api/internal/api/shared"
	"github.com/postcraft/postcraft-api/internal/service"
)

// BlueprintHandler handles brand blueprint API requests.
type BlueprintHandler struct {
	blueprintService service.BlueprintService
	logger           *slog.Logger
}

// NewBlueprintHandler creates a new BlueprintHandler.
func NewBlueprintHandler(blueprintService service.BlueprintService, logger *slog.Logger) *BlueprintHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlueprintHandler{
		blueprintService: blueprintService,
		logger:           logger.With(slog.String("component", "blueprint_handler")),
	}
}

// SaveBlueprint handles PUT /onboarding/brand-blueprint. It creates the user's blueprint or
// replaces the existing one.
func (h *BlueprintHandler) SaveBlueprint(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	var req BlueprintRequest
	if !parseAndValidateRequest(w, r, &req, h.logger) {
		return
	}

	blueprint, err := h.blueprintService.SaveBlueprint(r.Context(), userID, service.BlueprintInput{
		Topics:           req.Topics,
		Goal:             req.Goal,
		Tone:             req.Tone,
		PostingFrequency: req.PostingFrequency,
		PreferredDays:    req.PreferredDays,
		AskBeforePublish: req.AskBeforePublish,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save blueprint")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, blueprint)
}

// GetBlueprint handles GET /onboarding/brand-blueprint.
func (h *BlueprintHandler) GetBlueprint(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	blueprint, err := h.blueprintService.GetBlueprint(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get blueprint")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, blueprint)
}
