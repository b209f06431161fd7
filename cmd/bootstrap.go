package cmd

import (
	"context"
	"fmt"

	"github.com/Budomar/ProductCatalog/core/config"
	"github.com/Budomar/ProductCatalog/core/database"
	"github.com/Budomar/ProductCatalog/core/lock"
	"github.com/Budomar/ProductCatalog/core/logger"
	"github.com/Budomar/ProductCatalog/core/metrics"
	"github.com/Budomar/ProductCatalog/core/storage"
	"github.com/Budomar/ProductCatalog/feature/catalog"
	"github.com/Budomar/ProductCatalog/feature/catalog/classify"
	"github.com/Budomar/ProductCatalog/feature/catalog/columns"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"
	"github.com/Budomar/ProductCatalog/feature/catalog/snapshot"
	"github.com/Budomar/ProductCatalog/feature/catalog/source"
	"github.com/Budomar/ProductCatalog/feature/catalog/store"
	catalogsync "github.com/Budomar/ProductCatalog/feature/catalog/sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// runtime holds everything a command needs, wired from configuration.
type runtime struct {
	cfg          *config.Config
	logger       *zap.Logger
	store        *store.GormStore
	snapshots    snapshot.Store
	orchestrator *catalogsync.Orchestrator
	service      *catalog.Service
	registry     *prometheus.Registry
	closers      []func() error
}

// bootstrap loads configuration and wires the catalog engine.
func bootstrap(ctx context.Context) (*runtime, error) {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	rt := &runtime{cfg: cfg, logger: logg}

	// 3. Connect to Database (required)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return rt.fail(fmt.Errorf("database connection required: %w", err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		return rt.fail(fmt.Errorf("failed to get sql.DB: %w", err))
	}
	rt.closers = append(rt.closers, sqlDB.Close)
	rt.store = store.New(db)
	if err := rt.store.Migrate(ctx); err != nil {
		return rt.fail(err)
	}
	logg.Info("Connected to product store", zap.String("driver", cfg.Database.Driver))

	// 4. Storage, only when something lives in the bucket
	var client storage.Client
	if needsStorage(cfg.Catalog) {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return rt.fail(fmt.Errorf("failed to create storage client: %w", err))
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return rt.fail(err)
		}
	}

	// 5. Snapshot
	if cfg.Catalog.SnapshotObject != "" {
		rt.snapshots = snapshot.NewObjectStore(client, cfg.Storage.Bucket, cfg.Catalog.SnapshotObject)
	} else {
		rt.snapshots = snapshot.NewFileStore(cfg.Catalog.SnapshotPath)
	}

	// 6. Sources
	deps := source.Deps{
		HTTP:            source.NewHTTPClient(cfg.Catalog.FetchTimeout()),
		Storage:         client,
		Bucket:          cfg.Storage.Bucket,
		CredentialsFile: cfg.Catalog.GoogleCredentialsFile,
	}
	pricing, err := source.New(ctx, models.SourcePricing, cfg.Catalog.Pricing(), deps)
	if err != nil {
		return rt.fail(err)
	}
	stock, err := source.New(ctx, models.SourceStock, cfg.Catalog.Stock(), deps)
	if err != nil {
		return rt.fail(err)
	}

	// 7. Column aliases
	aliases := columns.DefaultAliases()
	if cfg.Catalog.AliasesFile != "" {
		if aliases, err = columns.LoadAliases(cfg.Catalog.AliasesFile); err != nil {
			return rt.fail(err)
		}
	}

	// 8. Lock
	locker, closeLock, err := lock.New(cfg.Lock)
	if err != nil {
		return rt.fail(fmt.Errorf("failed to create sync lock: %w", err))
	}
	rt.closers = append(rt.closers, closeLock)
	if cfg.Lock.RedisAddr != "" {
		logg.Info("Using redis sync lock", zap.String("addr", cfg.Lock.RedisAddr), zap.String("key", cfg.Lock.Key))
	}

	// 9. Metrics
	rt.registry = prometheus.NewRegistry()
	rt.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(rt.registry)

	rt.orchestrator = catalogsync.New(catalogsync.Params{
		Pricing:   pricing,
		Stock:     stock,
		Store:     rt.store,
		Snapshots: rt.snapshots,
		Locker:    locker,
		Aliases:   aliases,
		Images:    classify.NewImages(cfg.Catalog.ImageBase),
		Metrics:   m,
		Logger:    logg,
		Timeout:   cfg.Catalog.SyncTimeout(),
	})
	rt.service = catalog.NewService(rt.orchestrator, rt.store, rt.snapshots, cfg.Catalog, logg)
	return rt, nil
}

func needsStorage(c catalog.Config) bool {
	return c.SnapshotObject != "" || c.PricingKind == source.KindObject || c.StockKind == source.KindObject
}

// Close releases connections opened by bootstrap, last opened first.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			rt.logger.Warn("Failed to release resource", zap.Error(err))
		}
	}
	rt.closers = nil
	_ = rt.logger.Sync()
}

// fail releases whatever bootstrap opened so far and returns err.
func (rt *runtime) fail(err error) (*runtime, error) {
	rt.Close()
	return nil, err
}
