package vshell

import "context"

// Store is the key/value boundary the persistence adapter writes through.
// Values are opaque JSON documents.
type Store interface {
	// Load returns the value saved under key, or ErrKeyNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value under key.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
