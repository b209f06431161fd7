package models

import "time"

// SyncResult summarizes one completed sync.
type SyncResult struct {
	RunID     string        `json:"run_id"`
	Created   int           `json:"created"`
	Updated   int           `json:"updated"`
	Failed    int           `json:"failed"`
	Stale     int           `json:"stale"`
	Deleted   int           `json:"deleted"`
	Records   int           `json:"records"`
	Fallback  bool          `json:"fallback"`
	DryRun    bool          `json:"dry_run"`
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
}
