// Package mocks holds the shared mock implementations of the store and
// service interfaces. Every mock follows the same pattern: optional
// function fields override individual methods, and plain value fields
// drive a simple default behavior when no override is set. Tests across
// packages use these instead of redefining inline mocks.
package mocks
