package users

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/kvstore"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

func setupRepo(t *testing.T) *KVRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	return NewKVRepository(kvstore.NewSQLiteStore(db))
}

func TestGetAll_EmptyDirectory(t *testing.T) {
	repo := setupRepo(t)

	got, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSaveAll_RoundTripPreservesOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	in := []models.User{
		{ID: "AY1", FirstName: "Ayşe", LastName: "Yılmaz", Email: "ayse@example.com", Phone: "5115115555", Password: "secret1", CreatedAt: now, SavedCards: []models.Card{}},
		{ID: "MK2", FirstName: "Mehmet", LastName: "Kaya", Email: "mehmet@example.com", Phone: "5551112233", Password: "secret2", CreatedAt: now, SavedCards: []models.Card{
			{ID: "CARD1", CardName: "My Card", CardNumber: "1234567890123456", CardExpiry: "12/27", CardCVC: "123", IsDefault: true, AddedDate: now},
		}},
	}
	require.NoError(t, repo.SaveAll(ctx, in))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "AY1", got[0].ID)
	assert.Equal(t, "MK2", got[1].ID)
	require.Len(t, got[1].SavedCards, 1)
	assert.True(t, got[1].SavedCards[0].IsDefault)
}

func TestSaveAll_NilWritesEmptyArray(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, nil))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
