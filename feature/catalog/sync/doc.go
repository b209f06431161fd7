// Package sync runs the catalog sync pipeline.
//
// A run fetches the pricing and stock sources in parallel, resolves their
// columns, normalizes cells, left-joins stock onto prices, derives attributes
// and classifications, and reconciles the result into the store in one
// transaction. When fetching fails the last good snapshot is reconciled
// instead. Runs are serialized by a lock.Locker and bounded by a timeout.
//
// Every failure is returned as an *Error carrying a Kind; OutcomeOf turns a
// run into the structured outcome shown to callers.
package sync
