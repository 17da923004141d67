package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// AutoValue is the sentinel slot value that takes the dominant color
// extracted from the current album art.
const AutoValue = "auto"

// Slot names accepted in the [theme] config table.
const (
	SlotAccent   = "accent"
	SlotFg       = "fg"
	SlotFgMuted  = "fg_muted"
	SlotFgSubtle = "fg_subtle"
	SlotError    = "error"
)

// Theme defines the color palette and pre-built styles for the application.
// Slots configured "auto" start on their defaults and are recolored whenever
// a new dominant color is extracted from album art.
type Theme struct {
	Accent   lipgloss.Color // playing row, progress bar, titles
	FgBase   lipgloss.Color // primary text
	FgMuted  lipgloss.Color // secondary text
	FgSubtle lipgloss.Color // separators, empty progress
	Error    lipgloss.Color // notice line

	auto   map[string]bool
	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // default text
	Muted   lipgloss.Style // dimmed text
	Subtle  lipgloss.Style // very dim text
	Title   lipgloss.Style // bold, bright
	Accent  lipgloss.Style // accent without bold
	Playing lipgloss.Style // currently playing track
	Cursor  lipgloss.Style // selected row
	Error   lipgloss.Style
}

var defaultTheme = &Theme{
	Accent:   lipgloss.Color("#a78bfa"),
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),
	Error:    lipgloss.Color("#ff5555"),
	auto:     map[string]bool{},
}

// T returns the active theme.
func T() *Theme {
	return defaultTheme
}

// SetDefault installs t as the active theme.
func SetDefault(t *Theme) {
	if t != nil {
		defaultTheme = t
	}
}

// FromConfig builds a theme from configured slot values. Each value is a hex
// color like "#a78bfa", "auto", or empty to keep the default.
func FromConfig(slots map[string]string) (*Theme, error) {
	t := &Theme{
		Accent:   defaultTheme.Accent,
		FgBase:   defaultTheme.FgBase,
		FgMuted:  defaultTheme.FgMuted,
		FgSubtle: defaultTheme.FgSubtle,
		Error:    defaultTheme.Error,
		auto:     map[string]bool{},
	}

	for name, value := range slots {
		field := t.slot(name)
		if field == nil {
			return nil, fmt.Errorf("unknown theme slot %q", name)
		}
		switch {
		case value == "":
			// Keep default.
		case value == AutoValue:
			t.auto[name] = true
		case validHex(value):
			*field = lipgloss.Color(value)
		default:
			return nil, fmt.Errorf("theme slot %q: invalid color %q", name, value)
		}
	}

	return t, nil
}

func (t *Theme) slot(name string) *lipgloss.Color {
	switch name {
	case SlotAccent:
		return &t.Accent
	case SlotFg:
		return &t.FgBase
	case SlotFgMuted:
		return &t.FgMuted
	case SlotFgSubtle:
		return &t.FgSubtle
	case SlotError:
		return &t.Error
	default:
		return nil
	}
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}

// HasAuto reports whether any slot is configured to follow album art.
func (t *Theme) HasAuto() bool {
	return len(t.auto) > 0
}

// ApplyAuto assigns c to every "auto" slot and rebuilds the styles.
// Returns true when at least one slot changed.
func (t *Theme) ApplyAuto(c lipgloss.Color) bool {
	changed := false
	for name := range t.auto {
		field := t.slot(name)
		if field != nil && *field != c {
			*field = c
			changed = true
		}
	}
	if changed {
		t.styles = nil
	}
	return changed
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().Foreground(t.Accent),
		Playing: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
	}
}
