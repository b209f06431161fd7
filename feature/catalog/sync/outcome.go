package sync

import (
	"fmt"
	"time"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
)

// Outcome is what callers of a run get back, success or not.
type Outcome struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	ErrorKind Kind      `json:"error_kind,omitempty"`
	RunID     string    `json:"run_id,omitempty"`
	Created   int       `json:"created"`
	Updated   int       `json:"updated"`
	Failed    int       `json:"failed"`
	Stale     int       `json:"stale"`
	Deleted   int       `json:"deleted"`
	Fallback  bool      `json:"fallback"`
	DryRun    bool      `json:"dry_run"`
	Timestamp time.Time `json:"timestamp"`
}

// OutcomeOf folds a run's return values into an Outcome.
func OutcomeOf(result *models.SyncResult, err error) Outcome {
	if err != nil {
		out := Outcome{
			Message:   err.Error(),
			ErrorKind: KindOf(err),
			Timestamp: time.Now(),
		}
		if result != nil {
			out.RunID = result.RunID
		}
		return out
	}

	out := Outcome{
		Success:   true,
		RunID:     result.RunID,
		Created:   result.Created,
		Updated:   result.Updated,
		Failed:    result.Failed,
		Stale:     result.Stale,
		Deleted:   result.Deleted,
		Fallback:  result.Fallback,
		DryRun:    result.DryRun,
		Timestamp: result.Timestamp,
	}

	out.Message = fmt.Sprintf("synced %d products: %d created, %d updated", result.Records, result.Created, result.Updated)
	if result.DryRun {
		out.Message = "dry run, nothing written: " + out.Message
	}
	if result.Fallback {
		out.Message += " (from cached snapshot)"
	}
	return out
}
