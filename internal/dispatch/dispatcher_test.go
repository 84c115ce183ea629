package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codguard/codguard/internal/common"
	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/view"
)

type fakeNotifier struct {
	successes []string
	errs      []string
}

func (n *fakeNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Error(msg string)   { n.errs = append(n.errs, msg) }

type fakeRecorder struct {
	mu      sync.Mutex
	entries []ActionRecord
}

func (r *fakeRecorder) RecordAction(_ context.Context, entry ActionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func orderFields() view.Fields[model.Order] {
	return view.Fields[model.Order]{
		"customer": func(o model.Order) string { return o.Customer },
		"status":   func(o model.Order) string { return string(o.Status) },
	}
}

func newOrderCollection() *view.Collection[model.Order] {
	c := view.NewCollection(orderFields())
	c.SetRecords([]model.Order{
		{ID: "O1001", Customer: "Huzaifa Paracha", Status: model.OrderUnconfirmed},
		{ID: "O1002", Customer: "Sara Ahmed", Status: model.OrderPending},
	})
	return c
}

func TestDispatch_SuccessPatchesAndClearsSelection(t *testing.T) {
	coll := newOrderCollection()
	notifier := &fakeNotifier{}
	recorder := &fakeRecorder{}
	d := New("orders", coll, notifier, recorder)

	coll.Toggle("O1001")

	var gotIDs []string
	op := Op[model.Order]{
		Action:  "confirm",
		Targets: []string{"O1001"},
		Call: func(_ context.Context, ids []string) error {
			gotIDs = append([]string{}, ids...)
			return nil
		},
		Patch: func(o *model.Order) { o.Status = model.OrderConfirmed },
	}

	require.NoError(t, d.Dispatch(context.Background(), op))

	assert.Equal(t, []string{"O1001"}, gotIDs, "one call carrying the whole batch")

	rec, ok := coll.Get("O1001")
	require.True(t, ok)
	assert.Equal(t, model.OrderConfirmed, rec.Status)
	assert.Zero(t, coll.SelectionSize(), "selection clears after a successful action")
	assert.Len(t, notifier.successes, 1)

	_, pending := coll.PendingAction("O1001")
	assert.False(t, pending, "pending marker cleared on settle")

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, "ok", recorder.entries[0].Outcome)
	assert.Equal(t, "orders", recorder.entries[0].Domain)
}

func TestDispatch_LocalPatchIdempotent(t *testing.T) {
	coll := newOrderCollection()
	d := New("orders", coll, &fakeNotifier{}, nil)

	op := Op[model.Order]{
		Action:  "confirm",
		Targets: []string{"O1001"},
		Call:    func(context.Context, []string) error { return nil },
		Patch:   func(o *model.Order) { o.Status = model.OrderConfirmed },
	}

	require.NoError(t, d.Dispatch(context.Background(), op))
	require.NoError(t, d.Dispatch(context.Background(), op))

	rec, _ := coll.Get("O1001")
	assert.Equal(t, model.OrderConfirmed, rec.Status, "re-applying the same result converges")
}

func TestDispatch_FailureRollsBack(t *testing.T) {
	coll := newOrderCollection()
	notifier := &fakeNotifier{}
	recorder := &fakeRecorder{}
	d := New("orders", coll, notifier, recorder)

	op := Op[model.Order]{
		Action:  "cancel",
		Targets: []string{"O1001", "O1002"},
		Call: func(context.Context, []string) error {
			return errors.New("backend exploded")
		},
		Patch: func(o *model.Order) { o.Status = model.OrderUnconfirmed },
	}

	err := d.Dispatch(context.Background(), op)
	require.Error(t, err)

	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr, "failures surface as operator-visible errors")

	rec, _ := coll.Get("O1002")
	assert.Equal(t, model.OrderPending, rec.Status, "failed call leaves records unchanged")
	assert.Len(t, notifier.errs, 1)
	assert.Empty(t, notifier.successes)

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, "error", recorder.entries[0].Outcome)
}

func TestDispatch_NoTargets(t *testing.T) {
	d := New("orders", newOrderCollection(), &fakeNotifier{}, nil)
	err := d.Dispatch(context.Background(), Op[model.Order]{Action: "confirm"})
	assert.ErrorIs(t, err, common.ErrNoTargets)
}

func TestDispatch_PerActionInFlight(t *testing.T) {
	coll := newOrderCollection()
	d := New("orders", coll, &fakeNotifier{}, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- d.Dispatch(context.Background(), Op[model.Order]{
			Action:  "confirm",
			Targets: []string{"O1001"},
			Call: func(context.Context, []string) error {
				close(started)
				<-release
				return nil
			},
		})
	}()

	<-started
	assert.True(t, d.Busy("confirm"))
	assert.False(t, d.Busy("cancel"), "unrelated actions stay available")

	err := d.Dispatch(context.Background(), Op[model.Order]{
		Action:  "confirm",
		Targets: []string{"O1002"},
		Call:    func(context.Context, []string) error { return nil },
	})
	assert.ErrorIs(t, err, common.ErrActionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, d.Busy("confirm"))
}

func TestDispatch_ValidationRejectsBeforeCall(t *testing.T) {
	coll := view.NewCollection(view.Fields[model.FakeOrder]{})
	coll.SetRecords([]model.FakeOrder{
		{ID: "F1", Status: model.FakeBlacklisted},
	})
	notifier := &fakeNotifier{}
	d := New("fake-orders", coll, notifier, nil)

	called := false
	err := d.Dispatch(context.Background(), Op[model.FakeOrder]{
		Action:  "set-status",
		Targets: []string{"F1"},
		Call: func(context.Context, []string) error {
			called = true
			return nil
		},
		Validate: func(rec model.FakeOrder) error {
			if !rec.Status.CanTransition(model.FakeProcessing) {
				return common.ErrInvalidTransition
			}
			return nil
		},
	})

	assert.ErrorIs(t, err, common.ErrInvalidTransition)
	assert.False(t, called, "nothing goes out when validation fails")
	assert.Len(t, notifier.errs, 1)
}
