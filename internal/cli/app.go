// Package cli implements the interactive storefront terminal: browsing the
// catalog, registration and login, cart management, the simulated checkout
// and the administrator panel. It is presentation glue over the services;
// every domain error is recovered here and shown as a message.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	_ "modernc.org/sqlite"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/catalog"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/config"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/kvstore"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/logging"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
	cartrepo "github.com/ysfrd/dream-accessory-ecommerce/internal/repositories/cart"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/repositories/session"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/repositories/users"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/services"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	directory services.DirectoryService
	cart      services.CartService
	payments  services.PaymentService
	catalog   *catalog.Client
	products  []models.Product

	currentUser *models.User
	isAdmin     bool
	reader      *bufio.Reader
}

// NewApp opens the local store database, wires the services and restores
// the persisted session, if any.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := kvstore.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "failed to initialize database", "error", err)
		return nil, err
	}

	kv := kvstore.NewSQLiteStore(db)
	directory := services.NewDirectoryService(users.NewKVRepository(kv), session.NewKVStore(kv), log)
	cartSvc := services.NewCartService(cartrepo.NewKVStore(kv), log)
	payments := services.NewPaymentService(cfg.PaymentDelay, log)

	a := &App{
		config:    cfg,
		log:       log,
		db:        db,
		directory: directory,
		cart:      cartSvc,
		payments:  payments,
		catalog:   catalog.NewClient(cfg.CatalogURL),
		reader:    bufio.NewReader(os.Stdin),
	}

	// Session survives restarts until explicit logout or deletion.
	current, isAdmin, err := directory.CurrentUser(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.currentUser = current
	a.isAdmin = isAdmin

	return a, nil
}

// Run fetches the catalog once and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	products, err := a.catalog.Fetch(ctx)
	if err != nil {
		// The store still works without a catalog; shopping commands
		// will report an empty product list.
		a.log.Warn(ctx, "catalog unavailable", "error", err)
	} else {
		a.products = products
		a.log.Info(ctx, "catalog loaded", "products", len(products))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

func (a *App) isAdminUser() bool {
	return a.isAdmin
}

func (a *App) status() string {
	switch {
	case a.currentUser == nil:
		return "guest"
	case a.isAdmin:
		return a.currentUser.FullName() + " [admin]"
	default:
		return a.currentUser.FullName()
	}
}
