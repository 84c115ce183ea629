package model

import (
	"encoding/json"
	"strconv"
)

// aliasDoc resolves the snake_case/camelCase alias pairs the backend emits
// inconsistently (_id vs id, flag_count vs flagCount, and so on). Each record
// type decodes its canonical shape first, then fills gaps from the raw
// document through this helper.
type aliasDoc map[string]json.RawMessage

func parseAliases(data []byte) (aliasDoc, error) {
	var doc aliasDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// str returns the first non-empty string among the named keys.
func (d aliasDoc) str(keys ...string) string {
	for _, key := range keys {
		raw, ok := d[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

// num returns the first non-zero number among the named keys. Numbers
// delivered as strings are tolerated.
func (d aliasDoc) num(keys ...string) float64 {
	for _, key := range keys {
		raw, ok := d[key]
		if !ok {
			continue
		}
		var f float64
		if err := json.Unmarshal(raw, &f); err == nil && f != 0 {
			return f
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if f, err := strconv.ParseFloat(s, 64); err == nil && f != 0 {
				return f
			}
		}
	}
	return 0
}

// boolean returns true if any of the named keys decodes to true.
func (d aliasDoc) boolean(keys ...string) bool {
	for _, key := range keys {
		raw, ok := d[key]
		if !ok {
			continue
		}
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil && b {
			return true
		}
	}
	return false
}

// strs returns the first non-empty string list among the named keys.
func (d aliasDoc) strs(keys ...string) []string {
	for _, key := range keys {
		raw, ok := d[key]
		if !ok {
			continue
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
			return list
		}
	}
	return nil
}
