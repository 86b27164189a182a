package services

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/kvstore"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/logging"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/repositories/cart"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/repositories/session"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/repositories/users"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupKV(t *testing.T) kvstore.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	return kvstore.NewSQLiteStore(db)
}

// setupDirectory wires a directory service with a fixed clock so reports
// and timestamps are predictable.
func setupDirectory(t *testing.T, now time.Time) (*directoryService, session.Store) {
	t.Helper()
	kv := setupKV(t)
	sessions := session.NewKVStore(kv)
	svc := &directoryService{
		users:    users.NewKVRepository(kv),
		sessions: sessions,
		log:      testLogger(),
		validate: validator.New(),
		now:      func() time.Time { return now },
	}
	return svc, sessions
}

func setupCart(t *testing.T) CartService {
	t.Helper()
	return NewCartService(cart.NewKVStore(setupKV(t)), testLogger())
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		FirstName:       "Ayşe",
		LastName:        "Yılmaz",
		Email:           "ayse@example.com",
		Phone:           "511 511 55 55",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Address:         "İstanbul",
	}
}
