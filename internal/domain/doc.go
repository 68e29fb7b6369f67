// Package domain defines the entities the application is about: users,
// brand blueprints, and post drafts, together with their validation rules
// and state transitions. Nothing here depends on storage or transport.
package domain
