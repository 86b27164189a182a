package config

import (
	"flag"
	"os"
	"time"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local SQLite database
//	-u string   product catalog URL
//	-p int      payment delay in milliseconds
//	-e string   directory for the admin export file
//
// The function filters os.Args to only the flags it owns, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-p", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local store database")
	fs.StringVar(&cfg.CatalogURL, "u", cfg.CatalogURL, "product catalog URL")
	paymentDelayMs := fs.Int("p", int(cfg.PaymentDelay.Milliseconds()), "payment delay (in milliseconds)")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for the admin export file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PaymentDelay = time.Duration(*paymentDelayMs) * time.Millisecond
}
