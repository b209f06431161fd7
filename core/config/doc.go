// Package config provides configuration management for the product catalog.
//
// Configuration comes from a .env file (godotenv) and environment variables
// (viper). Defaults live in 'default' struct tags on each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key and shutdown timeout
//   - Database: product store driver and connection details
//   - Storage: MinIO credentials and bucket settings
//   - Log: logging level and format
//   - Lock: optional redis address for the cross-process sync lock
//   - Metrics: prometheus endpoint
//   - Catalog: sources, snapshot, timeouts and schedule of the sync
//
// Nested keys map to upper-cased environment variables with dots replaced by
// underscores, e.g. catalog.pricing_url is CATALOG_PRICING_URL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.PricingURL)
package config
