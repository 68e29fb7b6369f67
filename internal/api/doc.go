// Package api is the HTTP edge of the application: chi routing, request
// decoding and validation, authentication middleware, and the JSON error
// surface. Handlers translate HTTP requests into service calls and service
// results back into responses.
package api
