package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vinyl/internal/ui/styles"
)

// Dialog is a centered popup with a title, body, and footer line.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = auto-fit content
}

// Render returns the dialog as a string ready to be composed over the
// base view. termWidth and termHeight are the terminal dimensions for
// centering.
func (d *Dialog) Render(termWidth, termHeight int) string {
	contentWidth := d.Width
	if contentWidth == 0 {
		// Auto-fit: find widest line
		contentWidth = maxLineWidth(d.Content)
		if w := lipgloss.Width(d.Title); w > contentWidth {
			contentWidth = w
		}
		if w := lipgloss.Width(d.Footer); w > contentWidth {
			contentWidth = w
		}
		contentWidth += 2 // padding
	}

	// Limit to terminal width
	if maxWidth := termWidth - 4; contentWidth > maxWidth {
		contentWidth = maxWidth
	}

	contentLineCount := strings.Count(d.Content, "\n") + 1
	lines := make([]string, 0, contentLineCount+4)

	if d.Title != "" {
		lines = append(lines, centerLine(styles.TitleGradient(d.Title), contentWidth), "")
	}

	for line := range strings.SplitSeq(d.Content, "\n") {
		lines = append(lines, padLine(line, contentWidth))
	}

	if d.Footer != "" {
		footer := styles.T().S().Subtle.Render(d.Footer)
		lines = append(lines, "", centerLine(footer, contentWidth))
	}

	box := styles.PopupStyle().
		Width(contentWidth).
		Render(strings.Join(lines, "\n"))

	return Center(box, termWidth, termHeight)
}

// Center centers pre-rendered content in the terminal.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxHeight := len(lines)
	boxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > boxWidth {
			boxWidth = w
		}
	}

	padTop := (termHeight - boxHeight) / 2
	padLeft := (termWidth - boxWidth) / 2

	if padTop < 0 {
		padTop = 0
	}
	if padLeft < 0 {
		padLeft = 0
	}

	var result strings.Builder
	for range padTop {
		result.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := lipgloss.Width(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

func padLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
