package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/kvstore"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

// KVRepository implements Repository over the durable key-value store.
type KVRepository struct {
	store kvstore.Store
}

func NewKVRepository(store kvstore.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) GetAll(ctx context.Context) ([]models.User, error) {
	raw, err := r.store.Get(ctx, kvstore.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read user directory: %w", err)
	}
	if raw == nil {
		return []models.User{}, nil
	}

	var result []models.User
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode user directory: %w", err)
	}
	return result, nil
}

func (r *KVRepository) SaveAll(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode user directory: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyUsers, raw); err != nil {
		return fmt.Errorf("failed to write user directory: %w", err)
	}
	return nil
}
