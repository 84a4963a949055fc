// Package storage provides the string-keyed, JSON-valued key-value store
// the application persists into. Three backends exist: an in-memory map,
// a single JSON document on disk, and Redis.
package storage

import (
	"context"
	"errors"
)

// Persisted state keys.
const (
	KeyLoggedIn = "is_logged_in"
	KeyUsername = "username"
	KeyProfile  = "user_profile"
	KeyRecords  = "food_records"
)

// ErrKeyNotFound is returned by Get when a key is absent.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is a minimal string key-value store. Values are JSON-serialized
// by the caller; the store treats them as opaque strings.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
