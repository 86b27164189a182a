package cart

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/kvstore"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

func setupStore(t *testing.T) (*KVStore, kvstore.Store) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	kv := kvstore.NewSQLiteStore(db)
	return NewKVStore(kv), kv
}

func TestLoad_EmptyCart(t *testing.T) {
	s, _ := setupStore(t)

	items, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSave_PersistsItemsAndCount(t *testing.T) {
	s, kv := setupStore(t)
	ctx := context.Background()

	items := []models.CartItem{
		{Product: models.CartProduct{ID: 1, Name: "Bracelet", Price: 10}, Quantity: 2},
		{Product: models.CartProduct{ID: 2, Name: "Necklace", Price: 5}, Quantity: 3},
	}
	require.NoError(t, s.Save(ctx, items))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Quantity)

	rawCount, err := kv.Get(ctx, kvstore.KeyCartCount)
	require.NoError(t, err)
	assert.Equal(t, "5", string(rawCount))
}

func TestClear_EmptiesCartAndCount(t *testing.T) {
	s, kv := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []models.CartItem{
		{Product: models.CartProduct{ID: 1, Price: 10}, Quantity: 1},
	}))
	require.NoError(t, s.Clear(ctx))

	items, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	rawCount, err := kv.Get(ctx, kvstore.KeyCartCount)
	require.NoError(t, err)
	assert.Equal(t, "0", string(rawCount))
}
