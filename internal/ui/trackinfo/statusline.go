package trackinfo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vinyl/internal/ui/render"
	"github.com/llehouerou/vinyl/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "⏹"
)

// RenderStatusLine renders the playback state and mode flags on the left,
// volume on the right.
// Format: ▶ playing · repeat · random           vol 64%
func RenderStatusLine(s State, width int) string {
	st := styles.T().S()

	state := stopSymbol + " stopped"
	switch {
	case s.Playing:
		state = playSymbol + " playing"
	case s.Paused:
		state = pauseSymbol + " paused"
	}

	parts := []string{state}
	if s.Repeat {
		parts = append(parts, "repeat")
	}
	if s.Random {
		parts = append(parts, "random")
	}
	left := strings.Join(parts, " · ")

	right := fmt.Sprintf("vol %d%%", s.Volume)
	rightWidth := lipgloss.Width(right)
	if rightWidth+4 > width {
		return st.Muted.Render(render.TruncateAndPad(left, width))
	}

	left = render.Truncate(left, width-rightWidth-2)
	gap := width - lipgloss.Width(left) - rightWidth
	return st.Muted.Render(left) + strings.Repeat(" ", gap) + st.Subtle.Render(right)
}
