package api

import (
	"context"
	"net/url"

	"github.com/codguard/codguard/internal/model"
)

// UnresponsiveCustomers lists customers whose confirmation stalled,
// optionally filtered by follow-up status.
func (c *Client) UnresponsiveCustomers(ctx context.Context, status string) ([]model.UnresponsiveCustomer, error) {
	query := url.Values{}
	if status != "" && status != "all" {
		query.Set("status_filter", status)
	}

	var customers []model.UnresponsiveCustomer
	if err := c.get(ctx, "/unresponsive-customers", query, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// CustomerActionResult acknowledges a follow-up action.
type CustomerActionResult struct {
	Message    string `json:"message"`
	CustomerID string `json:"customer_id"`
}

// UpdateCustomerAction applies a follow-up action (send reminder, call
// customer, mark resolved) to one customer, with an optional note.
func (c *Client) UpdateCustomerAction(ctx context.Context, customerID string, action model.CustomerAction, note string) (*CustomerActionResult, error) {
	query := url.Values{"action": {string(action)}}
	if note != "" {
		query.Set("note", note)
	}

	var result CustomerActionResult
	if err := c.put(ctx, "/unresponsive-customers/"+url.PathEscape(customerID)+"/action", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReminderHistory lists sent reminders.
func (c *Client) ReminderHistory(ctx context.Context) ([]model.ReminderRecord, error) {
	var reminders []model.ReminderRecord
	if err := c.get(ctx, "/unresponsive-customers/reminders", nil, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// ResolvedCustomers lists customers whose orders were eventually confirmed.
func (c *Client) ResolvedCustomers(ctx context.Context) ([]model.ResolvedCustomer, error) {
	var resolved []model.ResolvedCustomer
	if err := c.get(ctx, "/unresponsive-customers/resolved", nil, &resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// UnresponsiveStats fetches the follow-up status counts.
func (c *Client) UnresponsiveStats(ctx context.Context) (*model.UnresponsiveStats, error) {
	var stats model.UnresponsiveStats
	if err := c.get(ctx, "/unresponsive-customers/stats/summary", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ReminderStats fetches reminder counts over recent windows.
func (c *Client) ReminderStats(ctx context.Context) (*model.ReminderStats, error) {
	var stats model.ReminderStats
	if err := c.get(ctx, "/unresponsive-customers/stats/reminders", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ResolvedStats fetches resolution counts over recent windows.
func (c *Client) ResolvedStats(ctx context.Context) (*model.ResolvedStats, error) {
	var stats model.ResolvedStats
	if err := c.get(ctx, "/unresponsive-customers/stats/resolved", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
