package services

import (
	"context"
	"fmt"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/logging"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/repositories/cart"
)

// CartService manages the in-progress shopping cart. Every mutation is
// flushed to the durable store; count and total are recomputed from the
// persisted lines on each read, never cached.
type CartService interface {
	AddItem(ctx context.Context, product models.Product) error
	RemoveItem(ctx context.Context, productID int64) error
	SetQuantity(ctx context.Context, productID int64, quantity int) error
	Clear(ctx context.Context) error
	Items(ctx context.Context) ([]models.CartItem, error)
	Count(ctx context.Context) (int, error)
	Total(ctx context.Context) (float64, error)
}

type cartService struct {
	store cart.Store
	log   logging.Logger
}

// NewCartService constructs a CartService over the given cart store.
func NewCartService(store cart.Store, log logging.Logger) CartService {
	return &cartService{store: store, log: log}
}

// AddItem increments the quantity of an existing line for the product or
// appends a new line with quantity 1. The product's display fields are
// snapshotted at add time; later catalog changes do not touch the line.
func (s *cartService) AddItem(ctx context.Context, product models.Product) error {
	items, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Product: product.Snapshot(), Quantity: 1})
	}

	if err := s.store.Save(ctx, items); err != nil {
		return err
	}
	s.log.Debug(ctx, "cart item added", "product", product.ID)
	return nil
}

// RemoveItem deletes the line for the product; absent lines are a no-op.
func (s *cartService) RemoveItem(ctx context.Context, productID int64) error {
	items, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.store.Save(ctx, kept)
}

// SetQuantity sets the line's quantity; anything below 1 removes the line.
// No upper bound is enforced.
func (s *cartService) SetQuantity(ctx context.Context, productID int64, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(ctx, productID)
	}

	items, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			return s.store.Save(ctx, items)
		}
	}
	return nil
}

// Clear empties the cart; used after a successful checkout.
func (s *cartService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *cartService) Items(ctx context.Context) ([]models.CartItem, error) {
	return s.store.Load(ctx)
}

func (s *cartService) Count(ctx context.Context) (int, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

func (s *cartService) Total(ctx context.Context) (float64, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to total cart: %w", err)
	}
	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total, nil
}
