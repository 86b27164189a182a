package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/kvstore"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

// KVStore implements Store over the durable key-value store. The item count
// is written alongside the lines so the storefront badge can read a single
// small key.
type KVStore struct {
	store kvstore.Store
}

func NewKVStore(store kvstore.Store) *KVStore {
	return &KVStore{store: store}
}

func (s *KVStore) Load(ctx context.Context) ([]models.CartItem, error) {
	raw, err := s.store.Get(ctx, kvstore.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if raw == nil {
		return []models.CartItem{}, nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return items, nil
}

func (s *KVStore) Save(ctx context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.store.Set(ctx, kvstore.KeyCart, raw); err != nil {
		return fmt.Errorf("failed to write cart: %w", err)
	}

	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	rawCount, err := json.Marshal(count)
	if err != nil {
		return fmt.Errorf("failed to encode cart count: %w", err)
	}
	if err := s.store.Set(ctx, kvstore.KeyCartCount, rawCount); err != nil {
		return fmt.Errorf("failed to write cart count: %w", err)
	}
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	return s.Save(ctx, nil)
}
