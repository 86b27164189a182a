package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/kvstore"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

// KVStore implements Store over the durable key-value store. The user and
// the admin flag live under separate keys; the flag is written even when
// false, matching the storefront's write-through behavior.
type KVStore struct {
	store kvstore.Store
}

func NewKVStore(store kvstore.Store) *KVStore {
	return &KVStore{store: store}
}

func (s *KVStore) Current(ctx context.Context) (*models.User, bool, error) {
	raw, err := s.store.Get(ctx, kvstore.KeySession)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil, false, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, false, fmt.Errorf("failed to decode session: %w", err)
	}

	isAdmin := false
	rawFlag, err := s.store.Get(ctx, kvstore.KeyAdminFlag)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read admin flag: %w", err)
	}
	if rawFlag != nil {
		if err := json.Unmarshal(rawFlag, &isAdmin); err != nil {
			return nil, false, fmt.Errorf("failed to decode admin flag: %w", err)
		}
	}

	return &user, isAdmin, nil
}

func (s *KVStore) SetCurrent(ctx context.Context, user models.User, isAdmin bool) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(ctx, kvstore.KeySession, raw); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return s.setAdminFlag(ctx, isAdmin)
}

func (s *KVStore) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, kvstore.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return s.setAdminFlag(ctx, false)
}

func (s *KVStore) setAdminFlag(ctx context.Context, isAdmin bool) error {
	raw, err := json.Marshal(isAdmin)
	if err != nil {
		return fmt.Errorf("failed to encode admin flag: %w", err)
	}
	if err := s.store.Set(ctx, kvstore.KeyAdminFlag, raw); err != nil {
		return fmt.Errorf("failed to write admin flag: %w", err)
	}
	return nil
}
