package reconcile

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCreate inserts a record whose key is absent from the store.
	ActionCreate ActionType = "create"
	// ActionUpdate overwrites the derived fields of an existing record in place.
	ActionUpdate ActionType = "update"
	// ActionDelete removes a store-only record. Planned only when purging.
	ActionDelete ActionType = "delete"
)

// Action represents a planned mutation operation.
type Action[R any] struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Record is the incoming record for create and update actions.
	Record R `json:"-"`
}

// Plan contains the ordered actions for one batch.
type Plan[R any] struct {
	// Actions are executed in order: incoming records first, then deletions.
	Actions []Action[R] `json:"actions"`

	// Stale lists store keys absent from the incoming batch, sorted.
	Stale []string `json:"stale"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// TotalItems is the number of unique keys across store and batch.
	TotalItems int `json:"total_items"`

	// Creates counts planned inserts.
	Creates int `json:"creates"`

	// Updates counts planned in-place updates.
	Updates int `json:"updates"`

	// Stale counts store keys the batch no longer reports.
	Stale int `json:"stale"`

	// Deletes counts planned deletions of stale keys.
	Deletes int `json:"deletes"`
}

// Options controls planning and execution.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoPurge plans deletion of stale keys. Off by default: stale records are kept.
	DoPurge bool
}
