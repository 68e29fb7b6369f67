// Package service provides application-level services for managing posts,
// brand blueprints, and AI-assisted content generation.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrEmptyText indicates that an assist action received empty or
	// whitespace-only input text. API layer should map this to HTTP 400.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrScheduleTimeInPast indicates a post was scheduled for a time that
	// is not in the future. API layer should map this to HTTP 422.
	ErrScheduleTimeInPast = errors.New("scheduled time must be in the future")

	// ErrImageTooLarge indicates an uploaded post image exceeds the size limit.
	ErrImageTooLarge = errors.New("image exceeds maximum allowed size")

	// ErrUnsupportedImageType indicates an uploaded post image has a content
	// type other than JPEG or PNG.
	ErrUnsupportedImageType = errors.New("unsupported image type")

	// ErrImageStorageDisabled indicates no object storage is configured, so
	// image uploads cannot be served.
	ErrImageStorageDisabled = errors.New("image storage is not configured")
)
