// Package users provides the persistence layer for the registered-user
// directory. The whole directory is stored as one JSON array in the durable
// store; the built-in administrator is never part of it.
package users

import (
	"context"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

// Repository describes read/write access to the stored user directory.
// Implementations read and write the collection whole; there is no
// per-record update.
type Repository interface {
	// GetAll returns the registered users in insertion order. An empty
	// directory yields an empty slice, not an error.
	GetAll(ctx context.Context) ([]models.User, error)

	// SaveAll persists the directory, replacing the previous contents.
	SaveAll(ctx context.Context, users []models.User) error
}
