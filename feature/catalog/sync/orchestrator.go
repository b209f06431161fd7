package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Budomar/ProductCatalog/core/lock"
	"github.com/Budomar/ProductCatalog/core/logger"
	"github.com/Budomar/ProductCatalog/core/metrics"
	"github.com/Budomar/ProductCatalog/feature/catalog/classify"
	"github.com/Budomar/ProductCatalog/feature/catalog/columns"
	"github.com/Budomar/ProductCatalog/feature/catalog/merge"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"
	"github.com/Budomar/ProductCatalog/feature/catalog/normalize"
	"github.com/Budomar/ProductCatalog/feature/catalog/reconcile"
	"github.com/Budomar/ProductCatalog/feature/catalog/snapshot"
	"github.com/Budomar/ProductCatalog/feature/catalog/source"
	"github.com/Budomar/ProductCatalog/feature/catalog/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Params wires an Orchestrator. Snapshots, Locker and Metrics may be nil.
type Params struct {
	Pricing   source.Fetcher
	Stock     source.Fetcher
	Store     store.Store
	Snapshots snapshot.Store
	Locker    lock.Locker
	Aliases   columns.Aliases
	Images    classify.Images
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
	// Timeout bounds a whole run. Zero means no bound beyond the caller's context.
	Timeout time.Duration
}

// Options tune a single run.
type Options struct {
	DryRun     bool
	PurgeStale bool
	// Timeout overrides Params.Timeout when positive.
	Timeout time.Duration
}

// Orchestrator runs the sync pipeline: fetch, resolve, normalize, merge,
// derive and reconcile.
type Orchestrator struct {
	pricing   source.Fetcher
	stock     source.Fetcher
	store     store.Store
	snapshots snapshot.Store
	locker    lock.Locker
	aliases   columns.Aliases
	images    classify.Images
	metrics   *metrics.Metrics
	logger    *zap.Logger
	timeout   time.Duration
	now       func() time.Time
}

// New creates an Orchestrator.
func New(p Params) *Orchestrator {
	locker := p.Locker
	if locker == nil {
		locker = lock.NewLocal()
	}
	aliases := p.Aliases
	if aliases == nil {
		aliases = columns.DefaultAliases()
	}
	l := p.Logger
	if l == nil {
		l = zap.NewNop()
	}

	return &Orchestrator{
		pricing:   p.Pricing,
		stock:     p.Stock,
		store:     p.Store,
		snapshots: p.Snapshots,
		locker:    locker,
		aliases:   aliases,
		images:    p.Images,
		metrics:   p.Metrics,
		logger:    l,
		timeout:   p.Timeout,
		now:       time.Now,
	}
}

// Run performs one sync. At most one run proceeds at a time; a concurrent call
// fails fast with KindInProgress. Any returned error is an *Error.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*models.SyncResult, error) {
	startTime := o.now()
	result := &models.SyncResult{RunID: uuid.NewString(), DryRun: opts.DryRun}
	log := logger.WithRunID(o.logger, result.RunID)

	unlock, err := o.locker.TryLock(ctx)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			log.Info("Sync skipped, another run is in progress")
			o.metrics.ObserveRun(string(KindInProgress), 0)
			return result, fail(KindInProgress, StageLocking, err)
		}
		o.metrics.ObserveRun(string(KindLock), 0)
		return result, fail(KindLock, StageLocking, err)
	}
	defer unlock()

	timeout := o.timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.Info("Sync started", zap.Bool("dry_run", opts.DryRun), zap.Bool("purge_stale", opts.PurgeStale))
	err = o.run(ctx, log, opts, result)

	result.Duration = o.now().Sub(startTime)
	result.Timestamp = o.now()

	if err != nil {
		// Whatever stage noticed it, an expired run deadline is a timeout.
		var runErr *Error
		if errors.As(err, &runErr) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			runErr.Kind = KindTimeout
		}
		o.metrics.ObserveRun(string(KindOf(err)), result.Duration)
		log.Error("Sync failed", zap.Error(err), zap.Duration("duration", result.Duration))
		return result, err
	}

	o.metrics.ObserveRun("success", result.Duration)
	if !opts.DryRun {
		o.metrics.AddUpserts(result.Created, result.Updated)
		o.metrics.MarkSuccess(result.Timestamp)
	}
	log.Info("Sync completed",
		zap.Duration("duration", result.Duration),
		zap.Int("records", result.Records),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed),
		zap.Int("stale", result.Stale),
		zap.Bool("fallback", result.Fallback))
	return result, nil
}

func (o *Orchestrator) run(ctx context.Context, log *zap.Logger, opts Options, result *models.SyncResult) error {
	// 1. Fetch both sources
	stepStart := o.now()
	log.Info("Fetching sources")
	pricing, stock, fetchErr := o.fetch(ctx)

	var records []models.CanonicalRecord
	if fetchErr != nil {
		if ctx.Err() != nil {
			return fail(KindTimeout, StageFetching, fmt.Errorf("%w: %v", ctx.Err(), fetchErr))
		}
		log.Warn("Fetch failed, falling back to snapshot", zap.Error(fetchErr))

		// 1b. Fall back to the last good snapshot
		snap, err := o.loadSnapshot(ctx)
		switch {
		case errors.Is(err, snapshot.ErrNotFound):
			return fail(KindFetch, StageFetching, fetchErr)
		case err != nil:
			return fail(KindCacheCorrupt, StageFallback, err)
		}
		records = snap.Records
		result.Fallback = true
		log.Info("Snapshot loaded",
			zap.Duration("duration", o.now().Sub(stepStart)),
			zap.Time("last_updated", snap.LastUpdated),
			zap.Int("records", len(records)))
	} else {
		log.Info("Sources fetched",
			zap.Duration("duration", o.now().Sub(stepStart)),
			zap.Int("pricing_rows", len(pricing.Rows)),
			zap.Int("stock_rows", len(stock.Rows)))

		var err error
		records, err = o.derive(ctx, log, pricing, stock, result)
		if err != nil {
			return err
		}
	}
	result.Records = len(records)

	// 2. Reconcile
	stepStart = o.now()
	log.Info("Reconciling store", zap.Int("records", len(records)))
	summary, err := reconcile.Reconcile(ctx, o.store, records, reconcile.Options{
		DryRun:     opts.DryRun,
		PurgeStale: opts.PurgeStale,
	})
	if err != nil {
		return fail(KindReconcile, StageReconciling, err)
	}
	result.Created = summary.Created
	result.Updated = summary.Updated
	result.Deleted = summary.Deleted
	result.Stale = summary.Stale
	log.Info("Reconcile completed",
		zap.Duration("duration", o.now().Sub(stepStart)),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("stale", summary.Stale),
		zap.Int("deleted", summary.Deleted))

	// 3. Refresh the snapshot from live data only
	if !result.Fallback && !opts.DryRun && o.snapshots != nil {
		snap := snapshot.Snapshot{Records: records, LastUpdated: o.now()}
		if err := o.snapshots.Save(ctx, snap); err != nil {
			log.Warn("Failed to save snapshot", zap.String("location", o.snapshots.Location()), zap.Error(err))
		}
	}
	return nil
}

// fetch pulls both sources concurrently. The first failure cancels the other.
func (o *Orchestrator) fetch(ctx context.Context) (pricing, stock models.RawTable, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pricing, err = o.pricing.Fetch(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stock, err = o.stock.Fetch(gctx)
		return err
	})
	err = g.Wait()
	return pricing, stock, err
}

func (o *Orchestrator) loadSnapshot(ctx context.Context) (*snapshot.Snapshot, error) {
	if o.snapshots == nil {
		return nil, snapshot.ErrNotFound
	}
	return o.snapshots.Load(ctx)
}

// derive turns the raw tables into canonical records.
func (o *Orchestrator) derive(ctx context.Context, log *zap.Logger, pricing, stock models.RawTable, result *models.SyncResult) ([]models.CanonicalRecord, error) {
	// Resolve columns
	stepStart := o.now()
	priceCols, err := columns.Resolve(pricing.Source, pricing.Headers, o.aliases, columns.PricingRoles)
	if err != nil {
		return nil, fail(KindSchemaResolution, StageResolving, err)
	}
	stockCols, err := columns.Resolve(stock.Source, stock.Headers, o.aliases, columns.StockRoles)
	if err != nil {
		return nil, fail(KindSchemaResolution, StageResolving, err)
	}
	log.Debug("Columns resolved", zap.Duration("duration", o.now().Sub(stepStart)))

	// Normalize cells
	stepStart = o.now()
	prices, degradedPrices := normalize.PriceRows(pricing, priceCols)
	stockRows, degradedStock := normalize.StockRows(stock, stockCols)
	o.logDegradations(log, degradedPrices)
	o.logDegradations(log, degradedStock)
	log.Info("Rows normalized",
		zap.Duration("duration", o.now().Sub(stepStart)),
		zap.Int("degraded", len(degradedPrices)+len(degradedStock)))
	if err := ctx.Err(); err != nil {
		return nil, fail(KindTimeout, StageNormalizing, err)
	}

	// Merge
	stepStart = o.now()
	merged := merge.LeftJoin(prices, stockRows)
	result.Failed = merged.DroppedPrice
	log.Info("Rows merged",
		zap.Duration("duration", o.now().Sub(stepStart)),
		zap.Int("rows", len(merged.Rows)),
		zap.Int("dropped_price", merged.DroppedPrice),
		zap.Int("dropped_stock", merged.DroppedStock),
		zap.Int("duplicate_price", merged.DuplicatePrice),
		zap.Int("unmatched", merged.Unmatched))
	if err := ctx.Err(); err != nil {
		return nil, fail(KindTimeout, StageMerging, err)
	}

	// Extract and classify
	stepStart = o.now()
	records := o.buildRecords(merged.Rows, log)
	log.Info("Attributes derived", zap.Duration("duration", o.now().Sub(stepStart)))
	if err := ctx.Err(); err != nil {
		return nil, fail(KindTimeout, StageExtracting, err)
	}
	return records, nil
}
