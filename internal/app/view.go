// internal/app/view.go

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/vinyl/internal/mpd"
	"github.com/llehouerou/vinyl/internal/ui/layout"
	"github.com/llehouerou/vinyl/internal/ui/overlay"
	"github.com/llehouerou/vinyl/internal/ui/styles"
	"github.com/llehouerou/vinyl/internal/ui/trackinfo"
)

// View implements tea.Model. It returns the view built by the last tick:
// rendering happens at most once per tick regardless of how many
// messages arrived in between.
func (m Model) View() string {
	return m.view
}

// render assembles the full screen. Pending image escapes (deletes from
// a clear, the one-time transmit of a newly prepared image) are
// prepended, the cursor-addressed placement escape appended.
func (m *Model) render() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	prefix := m.wipe + m.Art.TakeTransmit()
	m.wipe = ""

	base := m.renderBase()
	if m.notice != "" {
		notice := styles.T().S().Error.Render(ansi.Truncate(m.notice, m.width, "…"))
		base = replaceBottomRow(base, notice)
	}

	if m.showHelp {
		dialog := overlay.Dialog{
			Title:   "Help",
			Content: m.help.View(),
			Footer:  "? or esc to close",
		}
		return prefix + overlay.Compose(base, dialog.Render(m.width, m.height), m.width, m.height)
	}

	placement := ""
	if m.snap.State != mpd.Stopped {
		placement = m.Art.Placement(m.geom.ImageRow, m.geom.ImageCol)
	}
	return prefix + base + placement
}

func (m *Model) renderBase() string {
	art := m.renderArtColumn()
	if m.geom.PlaylistCols <= 0 {
		return art
	}
	return joinColumns(art, m.Queue.View(), m.geom)
}

// renderArtColumn lays out the art region: the image box (or its
// placeholder) centered in the upper part, the track text block at the
// bottom. Positions come straight from the computed geometry.
func (m *Model) renderArtColumn() string {
	g := m.geom
	if !m.havePoll || m.snap.State == mpd.Stopped {
		return m.renderIdleColumn()
	}

	rows := make([]string, g.ArtRows)

	if g.ImageRows > 0 {
		indent := strings.Repeat(" ", g.ImageCol-1)
		for i, line := range splitLines(m.Art.Placeholder()) {
			if r := g.ImageRow - 1 + i; r >= 0 && r < len(rows) {
				rows[r] = indent + line
			}
		}
	}

	if g.TextRow > 0 {
		info := trackinfo.Render(trackinfo.NewState(m.snap), g.TextWidth, m.glyphs)
		for i, line := range splitLines(info) {
			if r := g.TextRow - 1 + i; r >= 0 && r < len(rows) {
				rows[r] = line
			}
		}
	}

	return strings.Join(rows, "\n")
}

// renderIdleColumn fills the art region while nothing is playing.
func (m *Model) renderIdleColumn() string {
	g := m.geom
	logo := styles.TitleGradient("vinyl")
	hint := styles.T().S().Muted.Render("nothing playing")
	centered := overlay.Center(logo+"\n\n"+hint, g.ArtCols, g.ArtRows)
	return enforceHeight(centered, g.ArtRows)
}

// joinColumns places the playlist beside the art region, separated by
// the layout gutter.
func joinColumns(left, right string, g layout.Geometry) string {
	gutter := strings.Repeat(" ", layout.Gutter)
	leftLines := splitLines(enforceHeight(left, g.Rows))
	rightLines := splitLines(enforceHeight(right, g.Rows))

	var b strings.Builder
	for i := range leftLines {
		b.WriteString(padToWidth(leftLines[i], g.ArtCols))
		b.WriteString(gutter)
		if i < len(rightLines) {
			b.WriteString(rightLines[i])
		}
		if i < len(leftLines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// replaceBottomRow swaps the last screen row for the notice line.
func replaceBottomRow(base, notice string) string {
	lines := splitLines(base)
	if len(lines) == 0 {
		return notice
	}
	lines[len(lines)-1] = notice
	return strings.Join(lines, "\n")
}

// enforceHeight pads or trims s to exactly rows lines.
func enforceHeight(s string, rows int) string {
	lines := splitLines(s)
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func padToWidth(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
