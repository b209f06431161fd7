// Package lock provides the single-sync-at-a-time guard.
//
// Scheduled and manual syncs may start concurrently, from the same process or from
// separate ones. TryLock never waits: a second caller gets ErrLocked and reports a
// "sync in progress" outcome instead of interleaving writes with the holder.
//
// Local guards one process. Redis guards every process sharing a key; its token is
// released with a compare-and-delete script and expires after a TTL if the holder dies.
package lock
