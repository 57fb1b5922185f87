// Package storage persists the tracker's four JSON records behind a
// string key-value interface, with SQLite and PostgreSQL backends.
package storage

import "context"

// Record keys. Each maps to one independently persisted JSON document.
const (
	KeyExercises = "exercises"
	KeySessions  = "sessions"
	KeyHistory   = "history"
	KeyRunPlan   = "run_plan"
)

// Store is the generic key-value string store the tracker writes through.
// Get returns ok=false when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
	Close() error
}
