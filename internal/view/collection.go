package view

// Collection holds one dashboard's fetched records together with the derived
// filtered list, the selection set and per-row expansion state. It is owned by
// a single view and is not safe for concurrent use.
type Collection[R Record] struct {
	fields   Fields[R]
	records  []R
	filtered []R
	criteria Criteria
	selected map[string]bool
	expanded map[string]bool
	pending  map[string]string // record id -> action name awaiting settle
}

// NewCollection creates an empty collection with the given filterable fields.
func NewCollection[R Record](fields Fields[R]) *Collection[R] {
	return &Collection[R]{
		fields:   fields,
		criteria: Criteria{},
		selected: make(map[string]bool),
		expanded: make(map[string]bool),
		pending:  make(map[string]string),
	}
}

// SetRecords replaces the record list, typically after a re-fetch. The
// filtered view is rebuilt. Selection and expansion survive for identifiers
// still present; state for vanished identifiers is dropped.
func (c *Collection[R]) SetRecords(records []R) {
	c.records = make([]R, len(records))
	copy(c.records, records)
	c.refilter()

	present := make(map[string]bool, len(records))
	for _, rec := range records {
		present[rec.RecordID()] = true
	}
	for id := range c.selected {
		if !present[id] {
			delete(c.selected, id)
		}
	}
	for id := range c.expanded {
		if !present[id] {
			delete(c.expanded, id)
		}
	}
}

// Records returns the full unfiltered list.
func (c *Collection[R]) Records() []R { return c.records }

// Filtered returns the current filtered view.
func (c *Collection[R]) Filtered() []R { return c.filtered }

// Len returns the size of the full list.
func (c *Collection[R]) Len() int { return len(c.records) }

// SetCriterion sets one field's filter value. Changing any criterion clears
// the selection so a bulk action can never hit records hidden by the new
// filter.
func (c *Collection[R]) SetCriterion(field, value string) {
	if c.criteria[field] == value {
		return
	}
	c.criteria[field] = value
	c.ClearSelection()
	c.refilter()
}

// Criterion returns one field's current filter value.
func (c *Collection[R]) Criterion(field string) string { return c.criteria[field] }

// ClearCriteria removes every filter and clears the selection.
func (c *Collection[R]) ClearCriteria() {
	if !constrained(c.criteria) {
		return
	}
	c.criteria = Criteria{}
	c.ClearSelection()
	c.refilter()
}

// Toggle flips one record's selection membership.
func (c *Collection[R]) Toggle(id string) {
	if c.selected[id] {
		delete(c.selected, id)
		return
	}
	c.selected[id] = true
}

// SelectAll sets the selection to exactly the currently filtered records.
func (c *Collection[R]) SelectAll() {
	c.selected = make(map[string]bool, len(c.filtered))
	for _, rec := range c.filtered {
		c.selected[rec.RecordID()] = true
	}
}

// ClearSelection empties the selection set.
func (c *Collection[R]) ClearSelection() {
	c.selected = make(map[string]bool)
}

// IsSelected reports one record's selection membership.
func (c *Collection[R]) IsSelected(id string) bool { return c.selected[id] }

// Selected returns the selected identifiers in filtered-list order.
func (c *Collection[R]) Selected() []string {
	ids := make([]string, 0, len(c.selected))
	for _, rec := range c.filtered {
		if c.selected[rec.RecordID()] {
			ids = append(ids, rec.RecordID())
		}
	}
	return ids
}

// SelectionSize returns the size of the selection set.
func (c *Collection[R]) SelectionSize() int { return len(c.selected) }

// AllSelected reports whether the selection covers the entire filtered view.
// Derived rather than stored, so it can never go stale after a filter change.
func (c *Collection[R]) AllSelected() bool {
	return len(c.filtered) > 0 && len(c.selected) == len(c.filtered)
}

// ToggleExpanded flips one row's detail expansion. Rows expand independently.
func (c *Collection[R]) ToggleExpanded(id string) {
	if c.expanded[id] {
		delete(c.expanded, id)
		return
	}
	c.expanded[id] = true
}

// Expanded reports one row's expansion state.
func (c *Collection[R]) Expanded(id string) bool { return c.expanded[id] }

// MarkPending tags records with an action awaiting backend settle.
func (c *Collection[R]) MarkPending(ids []string, action string) {
	for _, id := range ids {
		c.pending[id] = action
	}
}

// ClearPending removes the pending tag from records.
func (c *Collection[R]) ClearPending(ids []string) {
	for _, id := range ids {
		delete(c.pending, id)
	}
}

// PendingAction returns the action a record is awaiting, if any.
func (c *Collection[R]) PendingAction(id string) (string, bool) {
	action, ok := c.pending[id]
	return action, ok
}

// Get returns a copy of the record with the given identifier.
func (c *Collection[R]) Get(id string) (R, bool) {
	for _, rec := range c.records {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero R
	return zero, false
}

// Patch applies fn to the record with the given identifier and rebuilds the
// filtered view. Returns false when the identifier is unknown.
func (c *Collection[R]) Patch(id string, fn func(*R)) bool {
	for i := range c.records {
		if c.records[i].RecordID() == id {
			fn(&c.records[i])
			c.refilter()
			return true
		}
	}
	return false
}

func (c *Collection[R]) refilter() {
	c.filtered = Filter(c.records, c.fields, c.criteria)
}
