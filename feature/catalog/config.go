package catalog

import (
	"time"

	"github.com/Budomar/ProductCatalog/feature/catalog/source"
)

// Config holds the catalog feature settings, read from the "catalog" section.
type Config struct {
	PricingKind  string `mapstructure:"pricing_kind" default:"csv"`
	PricingURL   string `mapstructure:"pricing_url" default:"https://docs.google.com/spreadsheets/d/19PRNpA6F_HMI6iHSCg2iJF52PnN203ckY1WnqY_t5fc/export?format=csv"`
	PricingRange string `mapstructure:"pricing_range" default:"A:Z"`
	StockKind    string `mapstructure:"stock_kind" default:"csv"`
	StockURL     string `mapstructure:"stock_url" default:"https://docs.google.com/spreadsheets/d/1o0e3-E20mQsWToYVQpCHZgLcbizCafLRpoPdxr8Rqfw/export?format=csv"`
	StockRange   string `mapstructure:"stock_range" default:"A:Z"`

	// GoogleCredentialsFile is a service-account JSON key, needed by the sheets kind.
	GoogleCredentialsFile string `mapstructure:"google_credentials_file"`

	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" default:"30"`
	SyncTimeoutSeconds  int `mapstructure:"sync_timeout_seconds" default:"300"`

	// SnapshotObject, when set, keeps the snapshot in the storage bucket instead of SnapshotPath.
	SnapshotPath   string `mapstructure:"snapshot_path" default:"data/products.json"`
	SnapshotObject string `mapstructure:"snapshot_object"`

	AliasesFile string `mapstructure:"aliases_file"`
	ImageBase   string `mapstructure:"image_base" default:"/static"`

	SyncIntervalMinutes   int `mapstructure:"sync_interval_minutes" default:"60"`
	HealthIntervalMinutes int `mapstructure:"health_interval_minutes" default:"360"`
	SnapshotMaxAgeHours   int `mapstructure:"snapshot_max_age_hours" default:"25"`

	PurgeStale      bool `mapstructure:"purge_stale" default:"false"`
	CacheTTLSeconds int  `mapstructure:"cache_ttl_seconds" default:"60"`
}

// Pricing returns the pricing source settings.
func (c Config) Pricing() source.Config {
	return source.Config{Kind: c.PricingKind, URL: c.PricingURL, Range: c.PricingRange}
}

// Stock returns the stock source settings.
func (c Config) Stock() source.Config {
	return source.Config{Kind: c.StockKind, URL: c.StockURL, Range: c.StockRange}
}

func (c Config) FetchTimeout() time.Duration {
	return seconds(c.FetchTimeoutSeconds, 30)
}

func (c Config) SyncTimeout() time.Duration {
	return seconds(c.SyncTimeoutSeconds, 300)
}

func (c Config) SyncInterval() time.Duration {
	return time.Duration(c.SyncIntervalMinutes) * time.Minute
}

func (c Config) HealthInterval() time.Duration {
	return time.Duration(c.HealthIntervalMinutes) * time.Minute
}

func (c Config) SnapshotMaxAge() time.Duration {
	if c.SnapshotMaxAgeHours <= 0 {
		return 25 * time.Hour
	}
	return time.Duration(c.SnapshotMaxAgeHours) * time.Hour
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func seconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}
