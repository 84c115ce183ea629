package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codguard/codguard/internal/api"
	"github.com/codguard/codguard/internal/dispatch"
	"github.com/codguard/codguard/internal/model"
)

const (
	requestTimeout = 30 * time.Second
	noticeDuration = 4 * time.Second
)

// loadOrders fetches the order page for the active status tab.
func loadOrders(client *api.Client, status string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		orders, err := client.Orders(ctx, status)
		if err != nil {
			return errMsg{err: err}
		}
		return ordersLoadedMsg{orders: orders}
	}
}

// loadStats fetches the order counters for the header.
func loadStats(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		stats, err := client.OrderStats(ctx)
		if err != nil {
			// Counters are decoration; the grid still works without them.
			slog.Debug("Failed to load order stats", "error", err)
			return nil
		}
		return statsLoadedMsg{stats: *stats}
	}
}

// runAction issues one bulk call for the targets and records the outcome.
// State reconciliation happens back in Update when the settle message lands.
func runAction(client *api.Client, recorder dispatch.Recorder, action string, ids []string) tea.Cmd {
	call := bulkCall(client, action)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := call(ctx, ids)

		if recorder != nil {
			outcome, detail := "ok", ""
			if err != nil {
				outcome, detail = "error", err.Error()
			}
			entry := dispatch.ActionRecord{
				CreatedAt: time.Now(),
				Domain:    "orders",
				Action:    action,
				Targets:   ids,
				Outcome:   outcome,
				Detail:    detail,
			}
			if recErr := recorder.RecordAction(ctx, entry); recErr != nil {
				slog.Warn("Failed to record action history", "action", action, "error", recErr)
			}
		}

		return actionSettledMsg{action: action, ids: ids, err: err}
	}
}

func bulkCall(client *api.Client, action string) func(context.Context, []string) (*api.BulkResult, error) {
	switch action {
	case actionConfirm:
		return client.ConfirmOrders
	case actionCancel:
		return client.CancelOrders
	case actionBookPostex:
		return client.BookWithPostex
	case actionBookLeopard:
		return client.BookWithLeopard
	default:
		return client.BookRecommended
	}
}

// actionPatch returns the anticipated local change for an action.
func actionPatch(action string) func(*model.Order) {
	switch action {
	case actionConfirm:
		return func(o *model.Order) { o.Status = model.OrderConfirmed }
	case actionCancel:
		return func(o *model.Order) { o.Status = model.OrderUnconfirmed }
	case actionBookPostex:
		return func(o *model.Order) {
			o.AssignedCourier = model.CourierPostex
			o.DeliveryState = model.DeliveryShipped
		}
	case actionBookLeopard:
		return func(o *model.Order) {
			o.AssignedCourier = model.CourierLeopard
			o.DeliveryState = model.DeliveryShipped
		}
	default:
		// Recommended booking: the courier choice lands server side, only
		// the delivery state is anticipated locally.
		return func(o *model.Order) { o.DeliveryState = model.DeliveryShipped }
	}
}

// clearNoticeAfter hides the banner once the notice has been visible a while.
func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}
