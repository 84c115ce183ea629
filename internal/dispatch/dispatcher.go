// Package dispatch performs named backend operations against one or many
// records and reconciles the local collection afterwards.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codguard/codguard/internal/common"
	"github.com/codguard/codguard/internal/view"
)

// Notifier surfaces transient operation feedback to the operator.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Recorder persists a trace of dispatched operations. Optional.
type Recorder interface {
	RecordAction(ctx context.Context, entry ActionRecord) error
}

// ActionRecord is one dispatched operation and its outcome.
type ActionRecord struct {
	CreatedAt time.Time
	Domain    string
	Action    string
	Targets   []string
	Outcome   string
	Detail    string
}

// Call issues the backend operation for the target identifiers. Bulk
// operations send the whole id slice in a single request.
type Call func(ctx context.Context, ids []string) error

// Validate inspects one target record before anything is sent; returning an
// error aborts the whole dispatch. Used for transition-table checks.
type Validate[R view.Record] func(rec R) error

// Op describes one operation to dispatch.
type Op[R view.Record] struct {
	// Action names the operation ("confirm", "cancel", "book-with-postex"...).
	Action string
	// Targets are the record identifiers the operation applies to.
	Targets []string
	// Call issues the single network request for all targets.
	Call Call
	// Patch applies the anticipated field change to one local record.
	Patch func(rec *R)
	// Validate, when set, is run against every target before the patch.
	Validate Validate[R]
}

// Dispatcher runs operations against a collection. Each action name has its
// own in-flight flag, so unrelated actions stay available while one is
// pending. It does not serialize different actions over overlapping targets.
type Dispatcher[R view.Record] struct {
	coll     *view.Collection[R]
	notifier Notifier
	recorder Recorder
	domain   string

	mu       sync.Mutex
	inflight map[string]bool
}

// New creates a dispatcher for a collection. recorder may be nil.
func New[R view.Record](domain string, coll *view.Collection[R], notifier Notifier, recorder Recorder) *Dispatcher[R] {
	return &Dispatcher[R]{
		coll:     coll,
		notifier: notifier,
		recorder: recorder,
		domain:   domain,
		inflight: make(map[string]bool),
	}
}

// Busy reports whether an action of the given name is awaiting settle.
func (d *Dispatcher[R]) Busy(action string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inflight[action]
}

// Dispatch runs an operation: validate targets, apply the optimistic patch
// with a pending marker, issue exactly one call, then reconcile. On success
// the patch stands, the pending marker and selection are cleared and a
// success notice is raised. On failure every target rolls back to its prior
// state, an error notice is raised and the error is returned. Failed calls
// are never retried.
func (d *Dispatcher[R]) Dispatch(ctx context.Context, op Op[R]) error {
	if len(op.Targets) == 0 {
		return common.ErrNoTargets
	}

	if op.Validate != nil {
		for _, id := range op.Targets {
			rec, ok := d.coll.Get(id)
			if !ok {
				return fmt.Errorf("record %s: %w", id, common.ErrNotFound)
			}
			if err := op.Validate(rec); err != nil {
				d.notifier.Error(fmt.Sprintf("%s rejected: %v", op.Action, err))
				return err
			}
		}
	}

	if err := d.begin(op.Action); err != nil {
		return err
	}
	defer d.finish(op.Action)

	// Snapshot targets so a failed call can roll the optimistic patch back.
	before := make(map[string]R, len(op.Targets))
	for _, id := range op.Targets {
		rec, ok := d.coll.Get(id)
		if !ok {
			return fmt.Errorf("record %s: %w", id, common.ErrNotFound)
		}
		before[id] = rec
	}

	if op.Patch != nil {
		for _, id := range op.Targets {
			d.coll.Patch(id, op.Patch)
		}
	}
	d.coll.MarkPending(op.Targets, op.Action)

	err := op.Call(ctx, op.Targets)
	d.coll.ClearPending(op.Targets)

	if err != nil {
		for id, prior := range before {
			snapshot := prior
			d.coll.Patch(id, func(rec *R) { *rec = snapshot })
		}
		d.record(ctx, op, "error", err.Error())
		d.notifier.Error(fmt.Sprintf("%s failed: %v", op.Action, err))
		return common.NewUserError(fmt.Sprintf("%s failed", op.Action), err)
	}

	d.coll.ClearSelection()
	d.record(ctx, op, "ok", "")
	d.notifier.Success(fmt.Sprintf("%s applied to %d record(s)", op.Action, len(op.Targets)))
	return nil
}

func (d *Dispatcher[R]) begin(action string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inflight[action] {
		return fmt.Errorf("%s: %w", action, common.ErrActionInFlight)
	}
	d.inflight[action] = true
	return nil
}

func (d *Dispatcher[R]) finish(action string) {
	d.mu.Lock()
	delete(d.inflight, action)
	d.mu.Unlock()
}

func (d *Dispatcher[R]) record(ctx context.Context, op Op[R], outcome, detail string) {
	if d.recorder == nil {
		return
	}
	entry := ActionRecord{
		CreatedAt: time.Now(),
		Domain:    d.domain,
		Action:    op.Action,
		Targets:   op.Targets,
		Outcome:   outcome,
		Detail:    detail,
	}
	if err := d.recorder.RecordAction(ctx, entry); err != nil {
		slog.Warn("Failed to record action history",
			"domain", d.domain,
			"action", op.Action,
			"error", err)
	}
}
