package session

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

func setupStore(t *testing.T) *KVStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	return NewKVStore(kvstore.NewSQLiteStore(db))
}

func TestCurrent_AbsentSessionMeansLoggedOut(t *testing.T) {
	s := setupStore(t)

	user, isAdmin, err := s.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.False(t, isAdmin)
}

func TestSetCurrent_PersistsUserAndFlag(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetCurrent(ctx, models.User{ID: "AY1", Email: "ayse@example.com"}, false))

	user, isAdmin, err := s.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "AY1", user.ID)
	assert.False(t, isAdmin)
}

func TestSetCurrent_AdminFlagDerived(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	admin := models.BuiltinAdmin(time.Now())
	require.NoError(t, s.SetCurrent(ctx, admin, true))

	user, isAdmin, err := s.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.AdminID, user.ID)
	assert.True(t, isAdmin)
}

func TestClear_IsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetCurrent(ctx, models.User{ID: "AY1"}, true))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	user, isAdmin, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.False(t, isAdmin)
}
