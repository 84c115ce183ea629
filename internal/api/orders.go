package api

import (
	"context"
	"net/url"

	"github.com/codguard/codguard/internal/model"
)

// Orders lists orders, optionally filtered by status ("all" or empty lists
// everything).
func (c *Client) Orders(ctx context.Context, status string) ([]model.Order, error) {
	query := url.Values{}
	if status != "" && status != "all" {
		query.Set("status", status)
	}

	var orders []model.Order
	if err := c.get(ctx, "/orders", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches a single order.
func (c *Client) Order(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := c.get(ctx, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets one order's status, optionally appending a response
// entry to its confirmation history. Returns the updated order.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status, responseContent string) (*model.Order, error) {
	query := url.Values{"status": {status}}
	if responseContent != "" {
		query.Set("response_content", responseContent)
	}

	var order model.Order
	if err := c.put(ctx, "/orders/"+url.PathEscape(id)+"/status", query, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderStats fetches the order status counts.
func (c *Client) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	var stats model.OrderStats
	if err := c.get(ctx, "/orders/stats/summary", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ConfirmOrders bulk-confirms orders in one request.
func (c *Client) ConfirmOrders(ctx context.Context, ids []string) (*BulkResult, error) {
	return c.bulk(ctx, "/orders/confirm", ids)
}

// CancelOrders bulk-cancels orders in one request.
func (c *Client) CancelOrders(ctx context.Context, ids []string) (*BulkResult, error) {
	return c.bulk(ctx, "/orders/cancel", ids)
}

// BookWithPostex books orders with PostEx in one request.
func (c *Client) BookWithPostex(ctx context.Context, ids []string) (*BulkResult, error) {
	return c.bulk(ctx, "/orders/book-with-postex", ids)
}

// BookWithLeopard books orders with Leopard in one request.
func (c *Client) BookWithLeopard(ctx context.Context, ids []string) (*BulkResult, error) {
	return c.bulk(ctx, "/orders/book-with-leopard", ids)
}

// BookRecommended lets the backend pick the best courier per order.
func (c *Client) BookRecommended(ctx context.Context, ids []string) (*BulkResult, error) {
	return c.bulk(ctx, "/orders/book-recommended", ids)
}

// bulk posts a bare array of ids, matching the backend's request shape.
func (c *Client) bulk(ctx context.Context, path string, ids []string) (*BulkResult, error) {
	var result BulkResult
	if err := c.post(ctx, path, ids, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
