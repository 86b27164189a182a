// Package config assembles runtime settings for the storefront CLI from
// defaults, an optional JSON file and command-line flags, in that order.
package config

import "time"

// Config holds runtime settings for the storefront.
//
// Fields:
//   - DatabaseDSN: path or DSN of the local SQLite store.
//   - CatalogURL: endpoint serving the product list (fetched once).
//   - PaymentDelay: artificial processing delay of the simulated payment.
//   - ExportDir: directory receiving the admin export file.
type Config struct {
	DatabaseDSN  string
	CatalogURL   string
	PaymentDelay time.Duration
	ExportDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "store.db"
	c.CatalogURL = "http://localhost:8080/api/products"
	c.PaymentDelay = 1500 * time.Millisecond
	c.ExportDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
