package database

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KVStore.Get when the key is absent.
var ErrNotFound = errors.New("key not found")

// KVStore is the persistent key-value store records are written to.
// Values are opaque serialized strings.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
