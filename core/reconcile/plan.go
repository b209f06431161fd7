package reconcile

import "sort"

// BuildPlan diffs an incoming batch against the keys currently in the store.
// Each incoming key yields exactly one create or update, in batch order. A key
// repeated within the batch is planned as an update of its first occurrence.
func BuildPlan[R any](existing map[string]struct{}, incoming []R, keyOf func(R) string, opts Options) *Plan[R] {
	plan := &Plan[R]{}
	seen := make(map[string]struct{}, len(incoming))

	for _, rec := range incoming {
		key := keyOf(rec)
		_, inStore := existing[key]
		_, inBatch := seen[key]

		if inStore || inBatch {
			plan.Actions = append(plan.Actions, Action[R]{
				Type:   ActionUpdate,
				Key:    key,
				Reason: "present in store",
				Record: rec,
			})
			plan.Summary.Updates++
		} else {
			plan.Actions = append(plan.Actions, Action[R]{
				Type:   ActionCreate,
				Key:    key,
				Reason: "missing in store",
				Record: rec,
			})
			plan.Summary.Creates++
		}
		seen[key] = struct{}{}
	}

	for key := range existing {
		if _, ok := seen[key]; !ok {
			plan.Stale = append(plan.Stale, key)
		}
	}
	sort.Strings(plan.Stale)
	plan.Summary.Stale = len(plan.Stale)
	plan.Summary.TotalItems = len(seen) + len(plan.Stale)

	if opts.DoPurge {
		for _, key := range plan.Stale {
			plan.Actions = append(plan.Actions, Action[R]{
				Type:   ActionDelete,
				Key:    key,
				Reason: "missing in batch",
			})
			plan.Summary.Deletes++
		}
	}

	return plan
}
