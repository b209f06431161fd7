package reconcile

import (
	"context"
	"fmt"
)

// Mutator applies single actions against a store.
// Implementations are expected to run inside the caller's transaction.
type Mutator[R any] interface {
	Create(ctx context.Context, key string, rec R) error
	Update(ctx context.Context, key string, rec R) error
	Delete(ctx context.Context, key string) error
}

// ApplyPlan executes the actions in order and stops at the first failure.
// It returns the number of actions executed. Nothing runs when opts.DryRun is set.
// The context is checked before every action so an expired deadline aborts the batch.
func ApplyPlan[R any](ctx context.Context, m Mutator[R], plan *Plan[R], opts Options) (executed int, err error) {
	if opts.DryRun {
		return 0, nil
	}

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return executed, err
		}

		switch action.Type {
		case ActionCreate:
			err = m.Create(ctx, action.Key, action.Record)
		case ActionUpdate:
			err = m.Update(ctx, action.Key, action.Record)
		case ActionDelete:
			err = m.Delete(ctx, action.Key)
		default:
			err = fmt.Errorf("unknown action type %q", action.Type)
		}
		if err != nil {
			return executed, fmt.Errorf("failed to %s key %s: %w", action.Type, action.Key, err)
		}
		executed++
	}

	return executed, nil
}
