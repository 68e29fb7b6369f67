// Package service holds the application use cases: the auth flows, blueprint
// management, post lifecycle, and AI assistance. Each service is constructed
// with the store and platform dependencies it needs and exposes the
// operations the HTTP layer calls.
//
// Services own the transactional boundaries (via store.RunInTransaction when
// an operation touches several tables), translate store sentinels into
// domain errors the API layer knows how to present, and never reach past
// the store interfaces into a concrete database.
package service
