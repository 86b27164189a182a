// Package cart persists the in-progress shopping cart.
package cart

import (
	"context"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

// Store describes the persisted cart contents.
type Store interface {
	// Load returns the cart lines; an absent cart yields an empty slice.
	Load(ctx context.Context) ([]models.CartItem, error)

	// Save persists the cart lines and the derived item count.
	Save(ctx context.Context, items []models.CartItem) error

	// Clear empties the cart.
	Clear(ctx context.Context) error
}
