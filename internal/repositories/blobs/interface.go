package blobs

import "context"

// Store describes get/set/delete operations over opaque string blobs.
// Implementations are backed by a device-local durable store.
type Store interface {
	// Get returns the blob stored under key. The second return value is
	// false when no blob exists for the key.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, fully overwriting any prior blob.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the blob under key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
}
