package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Budomar/ProductCatalog/core/database"
	"github.com/Budomar/ProductCatalog/core/lock"
	"github.com/Budomar/ProductCatalog/core/logger"
	"github.com/Budomar/ProductCatalog/core/metrics"
	"github.com/Budomar/ProductCatalog/core/server"
	"github.com/Budomar/ProductCatalog/core/storage"
	"github.com/Budomar/ProductCatalog/feature/catalog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the product store.
	Database database.Config `mapstructure:"database"`
	// Lock holds configuration for the single-sync lock.
	Lock lock.Config `mapstructure:"lock"`
	// Metrics holds configuration for the prometheus endpoint.
	Metrics metrics.Config `mapstructure:"metrics"`
	// Catalog holds the sources, snapshot and schedule of the catalog sync.
	Catalog catalog.Config `mapstructure:"catalog"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CATALOG_PRICING_URL -> catalog.pricing_url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings that would only fail later, mid-sync.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverPostgres, database.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("database.driver: unsupported %q", c.Database.Driver))
	}
	if strings.TrimSpace(c.Catalog.PricingURL) == "" {
		errs = append(errs, errors.New("catalog.pricing_url: required"))
	}
	if strings.TrimSpace(c.Catalog.StockURL) == "" {
		errs = append(errs, errors.New("catalog.stock_url: required"))
	}
	if c.Catalog.SyncIntervalMinutes < 0 || c.Catalog.HealthIntervalMinutes < 0 {
		errs = append(errs, errors.New("catalog: schedule intervals cannot be negative"))
	}
	// The redis lock is never renewed, so it has to outlive the longest run.
	if c.Lock.Distributed() && c.Lock.TTL() <= c.Catalog.SyncTimeout() {
		errs = append(errs, fmt.Errorf("lock.ttl_seconds: %s must exceed catalog.sync_timeout_seconds (%s)",
			c.Lock.TTL(), c.Catalog.SyncTimeout()))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path: %q must start with /", c.Metrics.Path))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// bindValues walks the struct and registers every 'mapstructure' key in Viper
// with the value of its 'default' tag.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set the default, even if empty, so AutomaticEnv sees the key
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
