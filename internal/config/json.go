package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The payment
// delay is given in milliseconds to keep the file format flat.
type JsonConfig struct {
	DatabaseDSN    string `json:"database_dsn"`
	CatalogURL     string `json:"catalog_url"`
	PaymentDelayMs int    `json:"payment_delay_ms"`
	ExportDir      string `json:"export_dir"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is set, nothing is
// loaded. Empty fields in the file leave the current value untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.CatalogURL != "" {
		cfg.CatalogURL = jc.CatalogURL
	}
	if jc.PaymentDelayMs > 0 {
		cfg.PaymentDelay = time.Duration(jc.PaymentDelayMs) * time.Millisecond
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
}
