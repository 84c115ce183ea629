// Package model defines the domain records shared across the dashboards and
// the status vocabulary each of them carries.
package model

// Tone is the color category a badge renders with. The terminal styles for
// each tone live in the tui themes package.
type Tone int

// Badge tones.
const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneWarning
	ToneDanger
	ToneInfo
	TonePending
)

// Badge is the display mapping for a raw status value.
type Badge struct {
	Text string
	Tone Tone
}

// neutralBadge is the fallback for values outside a vocabulary. Unknown
// statuses render gray instead of failing.
func neutralBadge(raw string) Badge {
	if raw == "" {
		raw = "unknown"
	}
	return Badge{Text: raw, Tone: ToneNeutral}
}
