package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/postcraft/postcraft-api/internal/api/shared"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/generation"
	"github.com/postcraft/postcraft-api/internal/service"
	"github.com/postcraft/postcraft-api/internal/service/auth"
	"github.com/postcraft/postcraft-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, service.ErrEmptyText),
		errors.Is(err, domain.ErrUnknownAction),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Payload errors
	case errors.Is(err, service.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, service.ErrUnsupportedImageType):
		return http.StatusUnsupportedMediaType

	// Semantically invalid but well-formed requests
	case errors.Is(err, service.ErrScheduleTimeInPast):
		return http.StatusUnprocessableEntity

	// Upstream AI failures
	case errors.Is(err, generation.ErrServiceUnavailable):
		return http.StatusServiceUnavailable

	case errors.Is(err, service.ErrImageStorageDisabled):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// genericErrorMessage is what clients see for errors with no safer mapping.
const genericErrorMessage = "An unexpected error occurred"

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this resource"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, store.ErrBlueprintNotFound):
		return "Brand blueprint not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrBlueprintExists):
		return "Brand blueprint already exists"

	// Bad request errors
	case errors.Is(err, service.ErrEmptyText):
		return "Text cannot be empty"

	case errors.Is(err, domain.ErrUnknownAction):
		return "Unknown assist action"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return "Invalid request data"

	// Payload errors
	case errors.Is(err, service.ErrImageTooLarge):
		return "Image exceeds the maximum allowed size"

	case errors.Is(err, service.ErrUnsupportedImageType):
		return "Unsupported image type"

	case errors.Is(err, service.ErrImageStorageDisabled):
		return "Image storage is not available"

	case errors.Is(err, service.ErrScheduleTimeInPast):
		return "Scheduled time must be in the future"

	// Upstream AI failures
	case errors.Is(err, generation.ErrServiceUnavailable):
		return "AI service temporarily unavailable"

	case errors.Is(err, generation.ErrInvalidModelOutput):
		return "AI returned invalid response format"

	default:
		return genericErrorMessage
	}
}

// HandleAPIError maps the error to an HTTP status and safe message, logs the
// full (redacted) error, and writes the sanitized response. The mapped safe
// message takes precedence; defaultMessage is used only when the error is not
// one of the recognized types.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if message == genericErrorMessage && defaultMessage != "" {
		message = defaultMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// HandleValidationError writes a 400 response for request validation
// failures. The client sees a sanitized message; the full error is logged
// redacted.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example: "Key: 'CreatePostRequest.Content' Error:Field validation for 'Content' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
