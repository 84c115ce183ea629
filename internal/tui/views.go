package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codguard/codguard/internal/tui/components"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.height < 10 {
		return "Terminal too small"
	}

	sections := []string{
		m.renderHeader(),
		m.table.View(),
	}

	if rec, ok := m.cursorRecord(); ok && m.coll.Expanded(rec.ID) {
		detail := components.NewOrderDetail(m.theme)
		detail.SetWidth(m.width)
		sections = append(sections, detail.Render(rec))
	}

	if m.mode == ModeSearch {
		sections = append(sections, m.renderSearchBar())
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("CODGuard · Order Confirmation")
	if m.client.SampleMode() {
		title += "  " + components.NewBanner(m.theme).RenderSampleMode()
	}
	if m.loading {
		title += "  " + m.theme.Subtitle.Render("loading...")
	}

	bar := components.NewStatsBar(m.theme)
	counters := bar.Render(m.stats)
	tabs := bar.RenderTabs(statusTabs, m.tab)

	status := m.theme.Subtitle.Render(fmt.Sprintf("%d shown · %d selected",
		len(m.coll.Filtered()), m.coll.SelectionSize()))

	return lipgloss.JoinVertical(lipgloss.Left, title, counters, tabs+"   "+status)
}

func (m Model) renderSearchBar() string {
	label := m.theme.Bold.Render("filter:" + searchFields[m.searchField] + " ")
	return label + m.searchInput.View()
}

func (m Model) renderFooter() string {
	banner := components.NewBanner(m.theme).Render(m.notice, m.noticeErr)

	var hints string
	if m.showHelp {
		hints = m.theme.Subtitle.Render(strings.Join([]string{
			"x select", "a select all", "A clear", "enter details",
			"c confirm", "C cancel", "p postex", "l leopard", "b recommended",
			"/ filter", "1-4 tabs", "r refresh", "q quit",
		}, " · "))
	} else {
		hints = m.theme.Subtitle.Render("x select · c confirm · C cancel · p/l/b book · / filter · ? help · q quit")
	}

	if banner == "" {
		return hints
	}
	return lipgloss.JoinVertical(lipgloss.Left, banner, hints)
}
