package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codguard/codguard/internal/api"
	"github.com/codguard/codguard/internal/dispatch"
	"github.com/codguard/codguard/internal/tui/themes"
)

// Run starts the interactive dashboard and blocks until the operator quits.
// recorder may be nil to skip action history.
func Run(client *api.Client, recorder dispatch.Recorder, themeName string) error {
	m := New(client, recorder, themes.GetTheme(themeName))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
