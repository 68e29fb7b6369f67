package api

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/postcraft/postcraft-api/internal/api/shared"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/service"
)

// maxImageUploadBytes caps how much of an image upload is read into memory.
// One byte beyond the service limit is enough to detect oversized files.
const maxImageUploadBytes = 2*1024*1024 + 1

// defaultPostPageSize mirrors the store default when no limit is given.
const defaultPostPageSize = 20

// PostHandler handles post-related API requests.
type PostHandler struct {
	postService service.PostService
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostService, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		postService: postService,
		logger:      logger.With(slog.String("component", "post_handler")),
	}
}

// CreatePost handles POST /posts.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	var req CreatePostRequest
	if !parseAndValidateRequest(w, r, &req, h.logger) {
		return
	}

	source := domain.PostSourceManual
	if req.Source != "" {
		source = domain.PostSource(req.Source)
	}

	post, err := h.postService.CreatePost(r.Context(), userID, req.Content, req.Hashtags, source)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, post)
}

// GetPost handles GET /posts/{id}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	userID, postID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(r.Context(), userID, postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// ListPosts handles GET /posts. Pagination uses limit and offset query
// parameters; invalid values fall back to the defaults.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	limit := parseQueryInt(r, "limit", 0)
	offset := parseQueryInt(r, "offset", 0)

	posts, err := h.postService.ListPosts(r.Context(), userID, limit, offset)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts")
		return
	}

	if limit <= 0 {
		limit = defaultPostPageSize
	}
	shared.RespondWithJSON(w, r, http.StatusOK, PostListResponse{
		Posts:  posts,
		Limit:  limit,
		Offset: offset,
	})
}

// UpdatePost handles PUT /posts/{id}.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, postID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !parseAndValidateRequest(w, r, &req, h.logger) {
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), userID, postID, req.Content, req.Hashtags)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/{id}.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, postID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(r.Context(), userID, postID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SchedulePost handles POST /posts/{id}/schedule.
func (h *PostHandler) SchedulePost(w http.ResponseWriter, r *http.Request) {
	userID, postID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req SchedulePostRequest
	if !parseAndValidateRequest(w, r, &req, h.logger) {
		return
	}

	post, err := h.postService.SchedulePost(r.Context(), userID, postID, req.ScheduledFor)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to schedule post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// PublishPost handles POST /posts/{id}/publish.
func (h *PostHandler) PublishPost(w http.ResponseWriter, r *http.Request) {
	userID, postID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	post, err := h.postService.PublishPost(r.Context(), userID, postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to publish post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// UploadImage handles POST /posts/{id}/image. The request body is the raw
// image; the Content-Type header declares its type.
func (h *PostHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, postID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Content-Type header is required")
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageUploadBytes))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Failed to read request body")
		return
	}

	post, err := h.postService.AttachImage(r.Context(), userID, postID, contentType, data)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to attach image")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// parseQueryInt parses a non-negative integer query parameter, returning
// fallback on absence or bad input.
func parseQueryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
