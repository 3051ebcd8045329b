// Package storage is the persistent key-value store behind the landing page,
// the terminal counterpart of a browser's localStorage. Values are JSON text
// stored under string keys; the typed accessors in this package decode the
// three well-known keys and fall back to documented defaults.
package storage

import (
	"context"
	"fmt"
)

// Well-known keys.
const (
	KeyRecentDesigns      = "recentDesigns"
	KeyTemplateCategories = "templateCategories"
	KeyUserPreferences    = "userPreferences"
)

// KV is a string key-value store.
type KV interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Keys lists the stored keys in lexical order.
	Keys(ctx context.Context) ([]string, error)
}

// DecodeError reports a stored value that is not valid JSON for its key.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
