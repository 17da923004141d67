package trackinfo

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vinyl/internal/ui/render"
	"github.com/llehouerou/vinyl/internal/ui/styles"
)

// RenderProgressBar renders the elapsed/duration bar.
// Format: 1:23  ████░░░░░░  4:56
func RenderProgressBar(elapsed, duration time.Duration, width int, glyphs Glyphs) string {
	if glyphs.Filled == "" || glyphs.Empty == "" {
		glyphs = DefaultGlyphs
	}
	st := styles.T().S()

	posStr := formatDuration(elapsed)
	durStr := formatDuration(duration)

	fixedWidth := lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < 3 {
		// Too narrow for a bar, just show times.
		return st.Subtle.Render(render.TruncateAndPad(posStr+" / "+durStr, width))
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(elapsed) / float64(duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	bar := st.Accent.Render(strings.Repeat(glyphs.Filled, filled)) +
		st.Subtle.Render(strings.Repeat(glyphs.Empty, barWidth-filled))

	return st.Subtle.Render(posStr) + "  " + bar + "  " + st.Subtle.Render(durStr)
}
