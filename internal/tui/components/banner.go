package components

import (
	"github.com/codguard/codguard/internal/tui/themes"
)

// Banner renders the transient footer notice.
type Banner struct {
	theme themes.Theme
}

// NewBanner creates a banner.
func NewBanner(theme themes.Theme) Banner {
	return Banner{theme: theme}
}

// Render draws the notice, an empty string when there is nothing to show.
func (b Banner) Render(text string, isErr bool) string {
	if text == "" {
		return ""
	}
	if isErr {
		return b.theme.BannerError.Render("✗ " + text)
	}
	return b.theme.Banner.Render("✓ " + text)
}

// RenderSampleMode draws the persistent demonstration-data badge.
func (b Banner) RenderSampleMode() string {
	return b.theme.SampleBadge.Render("◌ Sample Data Mode")
}
