package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/tui/themes"
)

func TestStatsBarPlaceholderWhileLoading(t *testing.T) {
	bar := NewStatsBar(themes.Default)
	assert.Contains(t, bar.Render(nil), "loading")
}

func TestStatsBarCounters(t *testing.T) {
	bar := NewStatsBar(themes.Default)
	out := bar.Render(&model.OrderStats{Total: 10, Confirmed: 4, Pending: 5, Unconfirmed: 1})

	assert.Contains(t, out, "10 total")
	assert.Contains(t, out, "4 confirmed")
	assert.Contains(t, out, "5 pending")
	assert.Contains(t, out, "1 unconfirmed")
}

func TestTabsMarkActive(t *testing.T) {
	bar := NewStatsBar(themes.Default)
	out := bar.RenderTabs([]string{"all", "pending"}, 1)

	assert.Contains(t, out, "1:all")
	assert.Contains(t, out, "2:pending")
}

func TestDetailRendersHistoryAndBadges(t *testing.T) {
	detail := NewOrderDetail(themes.Default)
	out := detail.Render(model.Order{
		OrderID:    "ORD-001",
		Customer:   "Huzaifa Paracha",
		Phone:      "0300-1111111",
		TotalPrice: 2500,
		Status:     model.OrderPending,
		History: []model.ConfirmationEntry{
			{Type: "whatsapp", Content: "please confirm", Timestamp: "2026-08-30"},
		},
	})

	assert.Contains(t, out, "ORD-001")
	assert.Contains(t, out, "Huzaifa Paracha")
	assert.Contains(t, out, "please confirm")
	assert.Contains(t, out, "Pending")
}

func TestBannerEmptyWhenNoNotice(t *testing.T) {
	banner := NewBanner(themes.Default)
	assert.Empty(t, banner.Render("", false))
	assert.Contains(t, banner.Render("saved", false), "saved")
	assert.Contains(t, banner.Render("boom", true), "boom")
}
