package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codguard/codguard/internal/dispatch"
)

// RecordAction implements dispatch.Recorder.
func (s *SQLiteStore) RecordAction(ctx context.Context, entry dispatch.ActionRecord) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO actions (domain, action, targets, outcome, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Domain,
		entry.Action,
		strings.Join(entry.Targets, ","),
		entry.Outcome,
		entry.Detail,
		createdAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record action: %w", err)
	}
	return nil
}

// ListActions returns the most recent entries, newest first. domain filters
// when non-empty; limit <= 0 defaults to 50.
func (s *SQLiteStore) ListActions(ctx context.Context, domain string, limit int) ([]dispatch.ActionRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT domain, action, targets, outcome, detail, created_at
		FROM actions`
	args := []any{}
	if domain != "" {
		query += ` WHERE domain = ?`
		args = append(args, domain)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	defer rows.Close()

	var entries []dispatch.ActionRecord
	for rows.Next() {
		var entry dispatch.ActionRecord
		var targets string
		var detail *string
		if err := rows.Scan(&entry.Domain, &entry.Action, &targets, &entry.Outcome, &detail, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}
		if targets != "" {
			entry.Targets = strings.Split(targets, ",")
		}
		if detail != nil {
			entry.Detail = *detail
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate actions: %w", err)
	}
	return entries, nil
}
