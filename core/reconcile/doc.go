// Package reconcile provides a generic, key-based upsert engine.
//
// A batch of incoming records is reconciled against the set of keys already held
// by a store in two phases, so a caller can inspect or report the plan before any
// write happens.
//
// # Plan
//
// BuildPlan walks the batch in order and emits one create or update per key. Keys
// held by the store but absent from the batch are reported as stale; they are only
// turned into delete actions when Options.DoPurge is set.
//
// # Apply
//
// ApplyPlan runs the actions through a Mutator one at a time and stops at the first
// error. It does not open transactions itself: the caller wraps it in the store's
// transaction so a failed or cancelled batch leaves nothing behind.
//
// # Usage Example
//
//	plan := reconcile.BuildPlan(existingKeys, records, keyOf, reconcile.Options{})
//	err := db.Transaction(func(tx *gorm.DB) error {
//	    _, err := reconcile.ApplyPlan(ctx, mutatorFor(tx), plan, reconcile.Options{})
//	    return err
//	})
package reconcile
