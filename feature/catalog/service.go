package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
	"github.com/Budomar/ProductCatalog/feature/catalog/snapshot"
	"github.com/Budomar/ProductCatalog/feature/catalog/store"
	catalogsync "github.com/Budomar/ProductCatalog/feature/catalog/sync"

	"go.uber.org/zap"
)

// Syncer runs one catalog sync.
type Syncer interface {
	Run(ctx context.Context, opts catalogsync.Options) (*models.SyncResult, error)
}

// Service handles catalog operations.
type Service struct {
	syncer    Syncer
	store     *store.GormStore
	snapshots snapshot.Store
	cache     *listCache
	cfg       Config
	logger    *zap.Logger
}

// NewService creates a new catalog service. snapshots may be nil.
func NewService(syncer Syncer, st *store.GormStore, snapshots snapshot.Store, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		syncer:    syncer,
		store:     st,
		snapshots: snapshots,
		cache:     newListCache(cfg.CacheTTL()),
		cfg:       cfg,
		logger:    logger,
	}
}

// Sync runs a sync and drops cached listings once it has written anything.
func (s *Service) Sync(ctx context.Context, dryRun bool) (*models.SyncResult, error) {
	result, err := s.syncer.Run(ctx, catalogsync.Options{
		DryRun:     dryRun,
		PurgeStale: s.cfg.PurgeStale,
	})
	if err == nil && !dryRun {
		s.cache.invalidate()
	}
	return result, err
}

// Products lists products matching f.
func (s *Service) Products(ctx context.Context, f store.Filter) ([]models.Product, error) {
	key := fmt.Sprintf("%s|%s|%t", f.Category, strings.ToLower(strings.TrimSpace(f.Search)), f.InStock)
	return s.cache.get(ctx, key, func(ctx context.Context) ([]models.Product, error) {
		return s.store.List(ctx, f)
	})
}

// Product returns one product and counts the view. It returns nil for an unknown article.
func (s *Service) Product(ctx context.Context, article string) (*models.Product, error) {
	return s.store.View(ctx, strings.TrimSpace(article))
}

// Categories returns per-category product counts.
func (s *Service) Categories(ctx context.Context) ([]store.CategoryCount, error) {
	return s.store.Categories(ctx)
}

// StatsReport is the catalog summary.
type StatsReport struct {
	store.Stats
	LastSync *time.Time `json:"last_sync,omitempty"`
}

// Stats returns catalog totals plus the time of the last good sync.
func (s *Service) Stats(ctx context.Context) (*StatsReport, error) {
	st, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	report := &StatsReport{Stats: st}

	if s.snapshots != nil {
		snap, err := s.snapshots.Load(ctx)
		switch {
		case err == nil:
			report.LastSync = &snap.LastUpdated
		case !errors.Is(err, snapshot.ErrNotFound):
			s.logger.Warn("Failed to read snapshot for stats", zap.Error(err))
		}
	}
	return report, nil
}
