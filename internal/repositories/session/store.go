// Package session persists the active identity independently of the user
// directory. The stored copy is a snapshot taken at login and is not kept
// in sync with later directory edits until the next explicit login.
package session

import (
	"context"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

// Store describes the persisted auth session. An absent session is the
// logged-out state; there is no expiry or revocation check.
type Store interface {
	// Current returns the active user snapshot and the derived admin flag.
	// A nil user means logged out.
	Current(ctx context.Context) (*models.User, bool, error)

	// SetCurrent replaces the session with the given identity.
	SetCurrent(ctx context.Context, user models.User, isAdmin bool) error

	// Clear logs out: drops the user and resets the admin flag. Clearing an
	// already-cleared session is a no-op.
	Clear(ctx context.Context) error
}
