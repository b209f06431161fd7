package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/Budomar/ProductCatalog/core/reconcile"
	"github.com/Budomar/ProductCatalog/feature/catalog/models"
	"github.com/Budomar/ProductCatalog/feature/catalog/store"
)

// errDryRun rolls back a dry-run transaction after planning.
var errDryRun = errors.New("dry run")

// Options controls one reconcile batch.
type Options struct {
	DryRun     bool
	PurgeStale bool
}

// Summary reports what a batch did, or would do for a dry run.
type Summary struct {
	Created int
	Updated int
	Deleted int
	Stale   int
}

// Error wraps a store failure. The batch has been rolled back.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("reconcile failed, batch rolled back: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Reconcile upserts records by article inside one store transaction. Existing
// products keep their id, creation time and view count; only derived fields change.
func Reconcile(ctx context.Context, st store.Store, records []models.CanonicalRecord, opts Options) (Summary, error) {
	var summary Summary

	err := st.Transaction(ctx, func(tx store.Store) error {
		existing, err := tx.ListAll(ctx)
		if err != nil {
			return err
		}

		keys := make(map[string]struct{}, len(existing))
		for _, p := range existing {
			keys[p.Article] = struct{}{}
		}

		planOpts := reconcile.Options{DryRun: opts.DryRun, DoPurge: opts.PurgeStale}
		plan := reconcile.BuildPlan(keys, records, models.CanonicalRecord.Key, planOpts)

		summary = Summary{
			Created: plan.Summary.Creates,
			Updated: plan.Summary.Updates,
			Deleted: plan.Summary.Deletes,
			Stale:   plan.Summary.Stale,
		}

		if opts.DryRun {
			return errDryRun
		}

		_, err = reconcile.ApplyPlan(ctx, mutator{tx: tx}, plan, planOpts)
		return err
	})

	switch {
	case errors.Is(err, errDryRun):
		return summary, nil
	case err != nil:
		return Summary{}, &Error{Err: err}
	}
	return summary, nil
}

// mutator applies plan actions through a transactional store.
type mutator struct {
	tx store.Store
}

func (m mutator) Create(ctx context.Context, _ string, rec models.CanonicalRecord) error {
	_, err := m.tx.Insert(ctx, rec)
	return err
}

func (m mutator) Update(ctx context.Context, key string, rec models.CanonicalRecord) error {
	existing, err := m.tx.FindByArticle(ctx, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("product %s vanished during the batch", key)
	}
	_, err = m.tx.Update(ctx, existing, rec)
	return err
}

func (m mutator) Delete(ctx context.Context, key string) error {
	return m.tx.DeleteByArticle(ctx, key)
}
