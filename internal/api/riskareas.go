package api

import (
	"context"
	"net/url"

	"github.com/codguard/codguard/internal/model"
)

// HighRiskAreaOrders lists orders escalated for high-risk-area handling,
// optionally filtered by status.
func (c *Client) HighRiskAreaOrders(ctx context.Context, status string) ([]model.HighRiskAreaOrder, error) {
	query := url.Values{}
	if status != "" && status != "all" {
		query.Set("status", status)
	}

	var orders []model.HighRiskAreaOrder
	if err := c.get(ctx, "/high-risk-areas", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// HighRiskAreaOrder fetches a single high-risk-area order.
func (c *Client) HighRiskAreaOrder(ctx context.Context, id string) (*model.HighRiskAreaOrder, error) {
	var order model.HighRiskAreaOrder
	if err := c.get(ctx, "/high-risk-areas/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateHighRiskAreaStatus sets an escalated order's status, optionally
// sending a message to the customer. Returns the updated record.
func (c *Client) UpdateHighRiskAreaStatus(ctx context.Context, id string, status model.RiskOrderStatus, messageText string) (*model.HighRiskAreaOrder, error) {
	body := statusUpdate{Status: string(status), MessageText: messageText}
	var order model.HighRiskAreaOrder
	if err := c.put(ctx, "/high-risk-areas/"+url.PathEscape(id)+"/status", nil, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// AddHighRiskAreaMessage appends a message to an escalated order's thread.
func (c *Client) AddHighRiskAreaMessage(ctx context.Context, id, text, sender string) (*model.HighRiskAreaOrder, error) {
	if sender == "" {
		sender = "user"
	}
	var order model.HighRiskAreaOrder
	if err := c.post(ctx, "/high-risk-areas/"+url.PathEscape(id)+"/messages", outgoingMessage{text, sender}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateHighRiskAreaRequest is the payload for escalating an order.
type CreateHighRiskAreaRequest struct {
	OrderID     string   `json:"order_id"`
	Customer    string   `json:"customer"`
	Area        string   `json:"area"`
	Address     string   `json:"address"`
	RiskRate    float64  `json:"risk_rate"`
	RiskFactors []string `json:"risk_factors"`
	Status      string   `json:"status,omitempty"`
}

// CreateHighRiskAreaOrder escalates an order for high-risk-area handling.
func (c *Client) CreateHighRiskAreaOrder(ctx context.Context, req CreateHighRiskAreaRequest) (*model.HighRiskAreaOrder, error) {
	var order model.HighRiskAreaOrder
	if err := c.post(ctx, "/high-risk-areas", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteHighRiskAreaOrder removes an order from high-risk handling.
func (c *Client) DeleteHighRiskAreaOrder(ctx context.Context, id string) error {
	return c.delete(ctx, "/high-risk-areas/"+url.PathEscape(id))
}

// HighRiskAreaStats fetches the escalation status counts.
func (c *Client) HighRiskAreaStats(ctx context.Context) (*model.HighRiskAreaStats, error) {
	var stats model.HighRiskAreaStats
	if err := c.get(ctx, "/high-risk-areas/stats/summary", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
