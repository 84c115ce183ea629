package api

import (
	"context"
	"net/url"

	"github.com/codguard/codguard/internal/model"
)

// statusUpdate is the request body for status endpoints that accept an
// optional outgoing message alongside the new status.
type statusUpdate struct {
	Status      string `json:"status"`
	MessageText string `json:"message_text,omitempty"`
}

// outgoingMessage is a message composed client-side for a record's thread.
type outgoingMessage struct {
	MessageText string `json:"message_text"`
	Sender      string `json:"sender"`
}

// FakeOrders lists orders under fraud review, optionally filtered by status.
func (c *Client) FakeOrders(ctx context.Context, status string) ([]model.FakeOrder, error) {
	query := url.Values{}
	if status != "" && status != "all" {
		query.Set("status", status)
	}

	var orders []model.FakeOrder
	if err := c.get(ctx, "/fake-orders", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FakeOrder fetches a single fake order.
func (c *Client) FakeOrder(ctx context.Context, id string) (*model.FakeOrder, error) {
	var order model.FakeOrder
	if err := c.get(ctx, "/fake-orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateFakeOrderStatus sets a fake order's review status, optionally sending
// a message to the customer. Returns the updated record.
func (c *Client) UpdateFakeOrderStatus(ctx context.Context, id string, status model.FakeOrderStatus, messageText string) (*model.FakeOrder, error) {
	body := statusUpdate{Status: string(status), MessageText: messageText}
	var order model.FakeOrder
	if err := c.put(ctx, "/fake-orders/"+url.PathEscape(id)+"/status", nil, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FlagFakeOrder updates a fake order's flag count and suspicion marker.
func (c *Client) FlagFakeOrder(ctx context.Context, id string, flagCount int, suspicious bool, messageText string) (*model.FakeOrder, error) {
	body := struct {
		FlagCount   int    `json:"flag_count"`
		Suspicious  bool   `json:"suspicious"`
		MessageText string `json:"message_text,omitempty"`
	}{flagCount, suspicious, messageText}

	var order model.FakeOrder
	if err := c.put(ctx, "/fake-orders/"+url.PathEscape(id)+"/flag", nil, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// AddFakeOrderMessage appends a message to a fake order's thread.
func (c *Client) AddFakeOrderMessage(ctx context.Context, id, text, sender string) (*model.FakeOrder, error) {
	if sender == "" {
		sender = "user"
	}
	var order model.FakeOrder
	if err := c.post(ctx, "/fake-orders/"+url.PathEscape(id)+"/messages", outgoingMessage{text, sender}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateFakeOrderRequest is the payload for registering an order for review.
type CreateFakeOrderRequest struct {
	OrderID              string   `json:"order_id"`
	Customer             string   `json:"customer"`
	Phone                string   `json:"phone"`
	Address              string   `json:"address"`
	Amount               float64  `json:"amount"`
	Status               string   `json:"status,omitempty"`
	Suspicious           bool     `json:"suspicious,omitempty"`
	FlagCount            int      `json:"flag_count,omitempty"`
	OrderHistory         []string `json:"order_history,omitempty"`
	VerificationRequired bool     `json:"verification_required,omitempty"`
}

// CreateFakeOrder registers an order for fraud review.
func (c *Client) CreateFakeOrder(ctx context.Context, req CreateFakeOrderRequest) (*model.FakeOrder, error) {
	var order model.FakeOrder
	if err := c.post(ctx, "/fake-orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteFakeOrder removes an order from review.
func (c *Client) DeleteFakeOrder(ctx context.Context, id string) error {
	return c.delete(ctx, "/fake-orders/"+url.PathEscape(id))
}

// FakeOrderStats fetches the fraud-review status counts.
func (c *Client) FakeOrderStats(ctx context.Context) (*model.FakeOrderStats, error) {
	var stats model.FakeOrderStats
	if err := c.get(ctx, "/fake-orders/stats/summary", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
