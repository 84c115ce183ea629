// Package components holds the reusable view fragments of the dashboard.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/tui/themes"
)

// StatsBar renders the order counters under the title line.
type StatsBar struct {
	theme themes.Theme
}

// NewStatsBar creates a stats bar.
func NewStatsBar(theme themes.Theme) StatsBar {
	return StatsBar{theme: theme}
}

// Render draws the counters. A nil stats value renders a placeholder so the
// header keeps its height while counters load.
func (s StatsBar) Render(stats *model.OrderStats) string {
	if stats == nil {
		return s.theme.Subtitle.Render("loading counters...")
	}

	parts := []string{
		s.theme.Bold.Render(fmt.Sprintf("%d total", stats.Total)),
		s.theme.Banner.Render(fmt.Sprintf("%d confirmed", stats.Confirmed)),
		s.theme.SampleBadge.Render(fmt.Sprintf("%d pending", stats.Pending)),
		s.theme.BannerError.Render(fmt.Sprintf("%d unconfirmed", stats.Unconfirmed)),
	}
	return strings.Join(parts, s.theme.Subtitle.Render("  ·  "))
}

// RenderTabs draws the status page tabs with the active one highlighted.
func (s StatsBar) RenderTabs(tabs []string, active int) string {
	rendered := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%d:%s", i+1, tab)
		if i == active {
			rendered = append(rendered, s.theme.TabActive.Render(label))
		} else {
			rendered = append(rendered, s.theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(rendered, "  "))
}
