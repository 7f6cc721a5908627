package ports

import "context"

// KVStore is the durable key-value storage the client falls back on.
// Values are opaque strings; callers serialise JSON themselves.
// Writes are last-writer-wins with no isolation between processes.
type KVStore interface {
	// Get returns the value and true, or "" and false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
