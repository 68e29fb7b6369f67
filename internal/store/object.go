package store

import "context"

// ObjectStore defines the interface for binary object persistence, used for
// post image uploads. Implementations store the bytes under the given path
// and return a publicly reachable URL.
type ObjectStore interface {
	// Upload stores the object and returns its public URL.
	// contentType must be one of the types the service layer allows.
	Upload(ctx context.Context, path string, contentType string, data []byte) (string, error)

	// Delete removes a previously uploaded object. Deleting a missing
	// object is not an error.
	Delete(ctx context.Context, path string) error
}
