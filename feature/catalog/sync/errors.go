package sync

import (
	"errors"
	"fmt"
)

// Kind classifies a failed run.
type Kind string

const (
	KindSchemaResolution Kind = "schema_resolution"
	KindFetch            Kind = "fetch"
	KindCacheCorrupt     Kind = "cache_corrupt"
	KindReconcile        Kind = "reconcile"
	KindTimeout          Kind = "timeout"
	KindInProgress       Kind = "in_progress"
	// KindLock means the lock backend itself failed, not that a run holds it.
	KindLock Kind = "lock"
)

// Stage names the step a run was in.
type Stage string

const (
	StageLocking     Stage = "locking"
	StageFetching    Stage = "fetching"
	StageFallback    Stage = "fallback"
	StageResolving   Stage = "resolving"
	StageNormalizing Stage = "normalizing"
	StageMerging     Stage = "merging"
	StageExtracting  Stage = "extracting"
	StageReconciling Stage = "reconciling"
)

// Error is the single error type a run returns.
type Error struct {
	Kind  Kind
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("sync failed (%s) while %s: %v", e.Kind, e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or "" when err is not a run error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func fail(kind Kind, stage Stage, err error) *Error {
	return &Error{Kind: kind, Stage: stage, Err: err}
}
