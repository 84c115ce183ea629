// Package themes defines the visual styles for the dashboard.
package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/codguard/codguard/internal/model"
)

// Theme defines the visual style for the dashboard.
type Theme struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Bold         lipgloss.Style
	Selected     lipgloss.Style
	Highlighted  lipgloss.Style
	BorderedBox  lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	Banner       lipgloss.Style
	BannerError  lipgloss.Style
	SampleBadge  lipgloss.Style
	badgeSuccess lipgloss.Style
	badgeWarning lipgloss.Style
	badgeDanger  lipgloss.Style
	badgeInfo    lipgloss.Style
	badgePending lipgloss.Style
	badgeNeutral lipgloss.Style
	Primary      lipgloss.Color
	Muted        lipgloss.Color
	Border       lipgloss.Color
	Success      lipgloss.Color
	Warning      lipgloss.Color
	Error        lipgloss.Color
	Info         lipgloss.Color
}

// Badge renders a status badge in the tone's style.
func (t Theme) Badge(b model.Badge) string {
	switch b.Tone {
	case model.ToneSuccess:
		return t.badgeSuccess.Render(b.Text)
	case model.ToneWarning:
		return t.badgeWarning.Render(b.Text)
	case model.ToneDanger:
		return t.badgeDanger.Render(b.Text)
	case model.ToneInfo:
		return t.badgeInfo.Render(b.Text)
	case model.TonePending:
		return t.badgePending.Render(b.Text)
	default:
		return t.badgeNeutral.Render(b.Text)
	}
}

// Default is the default theme.
var Default = buildTheme(palette{
	primary:    "#2DD4BF",
	success:    "#22C55E",
	warning:    "#FACC15",
	danger:     "#F87171",
	info:       "#60A5FA",
	foreground: "#FAFAFA",
	muted:      "#737373",
	border:     "#404040",
	selectedBg: "#0F766E",
})

// CatppuccinMocha is an alternative dark theme.
var CatppuccinMocha = buildTheme(palette{
	primary:    "#94E2D5",
	success:    "#A6E3A1",
	warning:    "#F9E2AF",
	danger:     "#F38BA8",
	info:       "#89DCEB",
	foreground: "#CDD6F4",
	muted:      "#6C7086",
	border:     "#45475A",
	selectedBg: "#45475A",
})

type palette struct {
	primary    string
	success    string
	warning    string
	danger     string
	info       string
	foreground string
	muted      string
	border     string
	selectedBg string
}

func buildTheme(p palette) Theme {
	badge := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	}

	return Theme{
		Primary: lipgloss.Color(p.primary),
		Muted:   lipgloss.Color(p.muted),
		Border:  lipgloss.Color(p.border),
		Success: lipgloss.Color(p.success),
		Warning: lipgloss.Color(p.warning),
		Error:   lipgloss.Color(p.danger),
		Info:    lipgloss.Color(p.info),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.foreground)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.foreground)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.selectedBg)).
			Foreground(lipgloss.Color(p.foreground)).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(lipgloss.Color(p.border)).
			Foreground(lipgloss.Color(p.foreground)),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)).
			Underline(true),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)),
		BannerError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.danger)).
			Bold(true),
		SampleBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)).
			Bold(true),

		badgeSuccess: badge(p.success),
		badgeWarning: badge(p.warning),
		badgeDanger:  badge(p.danger),
		badgeInfo:    badge(p.info),
		badgePending: lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)).Italic(true),
		badgeNeutral: lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
	}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
