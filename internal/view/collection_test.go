package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOrder struct {
	id       string
	customer string
	status   string
}

func (o testOrder) RecordID() string { return o.id }

var testFields = Fields[testOrder]{
	"customer": func(o testOrder) string { return o.customer },
	"status":   func(o testOrder) string { return o.status },
}

func sampleOrders() []testOrder {
	return []testOrder{
		{id: "O1", customer: "Huzaifa Paracha", status: "confirmed"},
		{id: "O2", customer: "Sara Ahmed", status: "pending"},
		{id: "O3", customer: "Ali Hassan", status: "unconfirmed"},
		{id: "O4", customer: "Sara Khan", status: "pending"},
	}
}

func TestFilter(t *testing.T) {
	orders := sampleOrders()

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{name: "no criteria is identity", criteria: Criteria{}, wantIDs: []string{"O1", "O2", "O3", "O4"}},
		{name: "empty values impose nothing", criteria: Criteria{"customer": "", "status": ""}, wantIDs: []string{"O1", "O2", "O3", "O4"}},
		{name: "substring match", criteria: Criteria{"status": "conf"}, wantIDs: []string{"O1", "O3"}},
		{name: "case folded", criteria: Criteria{"customer": "sara"}, wantIDs: []string{"O2", "O4"}},
		{name: "criteria AND across fields", criteria: Criteria{"customer": "sara", "status": "pending"}, wantIDs: []string{"O2", "O4"}},
		{name: "conflicting criteria", criteria: Criteria{"customer": "ali", "status": "confirmed"}, wantIDs: []string{}},
		{name: "unknown field matches nothing", criteria: Criteria{"city": "Lahore"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(orders, testFields, tt.criteria)
			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.id)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, testFields, Criteria{"status": "pending"})
	assert.Empty(t, got)
}

func TestFilter_Pure(t *testing.T) {
	orders := sampleOrders()
	first := Filter(orders, testFields, Criteria{"status": "pending"})
	second := Filter(orders, testFields, Criteria{"status": "pending"})
	assert.Equal(t, first, second)
	assert.Len(t, orders, 4, "input must not be mutated")
}

func TestCollection_Selection(t *testing.T) {
	c := NewCollection(testFields)
	c.SetRecords(sampleOrders())

	c.Toggle("O1")
	c.Toggle("O2")
	assert.True(t, c.IsSelected("O1"))
	c.Toggle("O1")
	assert.False(t, c.IsSelected("O1"))

	c.SetCriterion("status", "pending")
	assert.Zero(t, c.SelectionSize(), "filter change clears selection")

	c.SelectAll()
	require.Equal(t, []string{"O2", "O4"}, c.Selected(), "select-all covers the filtered view only")
	assert.True(t, c.AllSelected())

	c.SetCriterion("status", "conf")
	assert.Zero(t, c.SelectionSize())
	assert.False(t, c.AllSelected())
}

func TestCollection_AllSelectedDerived(t *testing.T) {
	c := NewCollection(testFields)
	assert.False(t, c.AllSelected(), "empty filtered view is never all-selected")

	c.SetRecords(sampleOrders())
	c.Toggle("O1")
	assert.False(t, c.AllSelected())
	c.SelectAll()
	assert.True(t, c.AllSelected())
	c.Toggle("O1")
	assert.False(t, c.AllSelected())
}

func TestCollection_ExpansionSurvivesRefetch(t *testing.T) {
	c := NewCollection(testFields)
	c.SetRecords(sampleOrders())

	c.ToggleExpanded("O2")
	assert.True(t, c.Expanded("O2"))
	assert.False(t, c.Expanded("O1"), "rows expand independently")

	// Refetch with O2 still present and O4 gone.
	c.SetRecords(sampleOrders()[:3])
	assert.True(t, c.Expanded("O2"))

	// Refetch without O2 drops its state.
	c.SetRecords([]testOrder{{id: "O1", status: "confirmed"}})
	assert.False(t, c.Expanded("O2"))
}

func TestCollection_Patch(t *testing.T) {
	c := NewCollection(testFields)
	c.SetRecords(sampleOrders())
	c.SetCriterion("status", "pending")

	ok := c.Patch("O2", func(o *testOrder) { o.status = "confirmed" })
	require.True(t, ok)

	// The patched record leaves the pending view.
	ids := make([]string, 0)
	for _, o := range c.Filtered() {
		ids = append(ids, o.id)
	}
	assert.Equal(t, []string{"O4"}, ids)

	rec, found := c.Get("O2")
	require.True(t, found)
	assert.Equal(t, "confirmed", rec.status)

	assert.False(t, c.Patch("nope", func(o *testOrder) {}))
}

func TestCollection_Pending(t *testing.T) {
	c := NewCollection(testFields)
	c.SetRecords(sampleOrders())

	c.MarkPending([]string{"O1", "O3"}, "confirm")
	action, ok := c.PendingAction("O1")
	require.True(t, ok)
	assert.Equal(t, "confirm", action)

	c.ClearPending([]string{"O1", "O3"})
	_, ok = c.PendingAction("O1")
	assert.False(t, ok)
}
