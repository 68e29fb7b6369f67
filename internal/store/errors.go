package store

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every store implementation. Entity-specific
// variants wrap the generic ones so callers can match either level with
// errors.Is.
var (
	// ErrNotFound reports that the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate reports that the operation would violate a uniqueness
	// constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity reports that the entity failed validation or
	// references a row that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUserNotFound reports that no user matches the given ID or email.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrPostNotFound reports that no post matches the given ID.
	ErrPostNotFound = fmt.Errorf("%w: post", ErrNotFound)

	// ErrBlueprintNotFound reports that the user has no brand blueprint yet.
	ErrBlueprintNotFound = fmt.Errorf("%w: brand blueprint", ErrNotFound)

	// ErrEmailExists reports that another user already registered the email.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrBlueprintExists reports that the user already has a brand
	// blueprint. Each user holds at most one; use Update to change it.
	ErrBlueprintExists = fmt.Errorf("%w: brand blueprint", ErrDuplicate)
)

// IsNotFoundError reports whether err is ErrNotFound or one of its
// entity-specific variants.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is ErrDuplicate or one of its
// entity-specific variants.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
