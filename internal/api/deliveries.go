package api

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/codguard/codguard/internal/common"
	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/sample"
)

// Deliveries lists booked deliveries, optionally filtered by courier. When
// the backend is unreachable the built-in sample dataset is returned instead
// and the client is flagged as running in sample data mode.
func (c *Client) Deliveries(ctx context.Context, courier string) ([]model.Delivery, error) {
	query := url.Values{}
	if courier != "" && courier != "all" {
		query.Set("courier", courier)
	}

	var deliveries []model.Delivery
	err := c.get(ctx, "/deliveries", query, &deliveries)
	if err == nil {
		return deliveries, nil
	}
	if !errors.Is(err, common.ErrBackendDown) {
		return nil, err
	}

	slog.Warn("Backend unreachable, serving sample deliveries", "error", err)
	c.sampleMode.Store(true)

	all := sample.Deliveries()
	if courier == "" || courier == "all" {
		return all, nil
	}
	filtered := make([]model.Delivery, 0, len(all))
	for _, d := range all {
		if string(d.Courier) == courier {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// CourierStats fetches per-courier delivery performance, with sample
// fallback.
func (c *Client) CourierStats(ctx context.Context) (map[string]model.CourierStats, error) {
	var stats map[string]model.CourierStats
	err := c.get(ctx, "/deliveries/stats/couriers", nil, &stats)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, common.ErrBackendDown) {
		return nil, err
	}

	slog.Warn("Backend unreachable, serving sample courier stats", "error", err)
	c.sampleMode.Store(true)
	return sample.CourierStats(), nil
}

// CityStats fetches per-city courier comparisons, with sample fallback.
func (c *Client) CityStats(ctx context.Context) ([]model.CityStats, error) {
	var stats []model.CityStats
	err := c.get(ctx, "/deliveries/stats/cities", nil, &stats)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, common.ErrBackendDown) {
		return nil, err
	}

	slog.Warn("Backend unreachable, serving sample city stats", "error", err)
	c.sampleMode.Store(true)
	return sample.CityStats(), nil
}

// DeliverySummary fetches the delivery rollup, with sample fallback.
func (c *Client) DeliverySummary(ctx context.Context) (*model.DeliverySummary, error) {
	var summary model.DeliverySummary
	err := c.get(ctx, "/deliveries/stats/summary", nil, &summary)
	if err == nil {
		return &summary, nil
	}
	if !errors.Is(err, common.ErrBackendDown) {
		return nil, err
	}

	slog.Warn("Backend unreachable, serving sample delivery summary", "error", err)
	c.sampleMode.Store(true)
	fallback := sample.Summary()
	return &fallback, nil
}
