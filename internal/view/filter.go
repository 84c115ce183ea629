// Package view implements the client-side record collection model the
// dashboards share: filtering, multi-selection, row expansion and optimistic
// local patches over a list fetched from the backend.
package view

import "strings"

// Record is any domain record with a stable identifier.
type Record interface {
	RecordID() string
}

// Fields maps filterable field names to accessors extracting the value a
// criterion is matched against.
type Fields[R Record] map[string]func(R) string

// Criteria are independent per-field filters. An empty value imposes no
// constraint; every non-empty value must match for a record to pass.
type Criteria map[string]string

// Filter returns the subsequence of records matching all non-empty criteria.
// Matching is case-folded substring containment. Input order is preserved and
// the input slice is never mutated. A criterion naming a field with no
// accessor matches nothing.
func Filter[R Record](records []R, fields Fields[R], criteria Criteria) []R {
	if !constrained(criteria) {
		out := make([]R, len(records))
		copy(out, records)
		return out
	}

	out := make([]R, 0, len(records))
	for _, rec := range records {
		if matches(rec, fields, criteria) {
			out = append(out, rec)
		}
	}
	return out
}

func matches[R Record](rec R, fields Fields[R], criteria Criteria) bool {
	for field, want := range criteria {
		if want == "" {
			continue
		}
		accessor, ok := fields[field]
		if !ok {
			return false
		}
		have := strings.ToLower(accessor(rec))
		if !strings.Contains(have, strings.ToLower(want)) {
			return false
		}
	}
	return true
}

func constrained(criteria Criteria) bool {
	for _, v := range criteria {
		if v != "" {
			return true
		}
	}
	return false
}
