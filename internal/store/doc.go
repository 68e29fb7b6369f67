// Package store declares the persistence interfaces the services depend
// on. Concrete implementations live under internal/platform; keeping the
// contracts here lets business logic compile without knowing which
// database backs it.
package store
