// Package kvstore implements the durable key-value store backing the whole
// storefront state: a synchronous, string-keyed JSON blob store that
// survives restarts. Collections are read and written whole under fixed
// keys; there are no transactions spanning keys and no coordination between
// concurrent writers. A second writer (another process on the same database
// file) can silently overwrite a collection — the store is correct only
// under a single-writer assumption.
package kvstore

import "context"

// Fixed key space of the storefront. Values are JSON-encoded.
const (
	KeyUsers     = "dreamAccessoryUsers"     // registered users, built-in admin excluded
	KeySession   = "dreamAccessoryUser"      // active session user, absent when logged out
	KeyAdminFlag = "dreamAccessoryAdmin"     // session admin flag
	KeyCart      = "dreamAccessoryCart"      // cart line items
	KeyCartCount = "dreamAccessoryCartCount" // derived item count, kept for the storefront badge
)

// Store is a persistent string-keyed blob store.
type Store interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set upserts the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all key-value pairs.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error
}
