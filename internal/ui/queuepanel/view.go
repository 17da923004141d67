package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vinyl/internal/mpd"
	"github.com/llehouerou/vinyl/internal/ui/render"
	"github.com/llehouerou/vinyl/internal/ui/styles"
)

const playingSymbol = "▶"

// headerOverhead is the header line plus separator above the track list.
const headerOverhead = 2

// View renders the playlist panel.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	header := m.renderHeader()
	separator := styles.T().S().Subtle.Render(render.Separator(m.width))
	trackList := m.renderTrackList()

	return header + "\n" + separator + "\n" + trackList
}

// renderHeader renders the "Playlist (pos/len)" line, where pos is the
// 1-based position of the playing track.
func (m Model) renderHeader() string {
	current := m.playing + 1
	if current < 1 {
		current = 0
	}
	text := fmt.Sprintf("Playlist (%d/%d)", current, len(m.tracks))
	return styles.T().S().Title.Render(render.TruncateAndPad(text, m.width))
}

func (m Model) renderTrackList() string {
	listHeight := m.height - headerOverhead
	if listHeight <= 0 {
		return ""
	}

	start := VisibleStart(len(m.tracks), m.selected, listHeight)

	lines := make([]string, 0, listHeight)
	for i := range listHeight {
		idx := start + i
		if idx >= len(m.tracks) {
			lines = append(lines, render.EmptyLine(m.width))
			continue
		}
		lines = append(lines, m.renderTrackLine(m.tracks[idx], idx))
	}

	return strings.Join(lines, "\n")
}

// renderTrackLine renders a single queue entry with the playing marker and
// a two-column title/artist layout.
func (m Model) renderTrackLine(track mpd.Track, idx int) string {
	prefix := "  "
	if idx == m.playing {
		prefix = playingSymbol + " "
	}

	// The marker glyph is multi-byte but renders two cells like the blank
	// prefix.
	const prefixWidth = 2
	contentWidth := m.width - prefixWidth
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	title := render.TruncateAndPad(track.DisplayTitle(), titleWidth)
	artist := render.TruncateAndPad(track.Artist, artistWidth)

	return m.trackStyle(idx).Render(prefix + title + artist)
}

// trackStyle returns the style for a queue entry. The selection and the
// playing highlight combine when they land on the same row.
func (m Model) trackStyle(idx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.selected
	isPlaying := idx == m.playing
	isPlayed := m.playing >= 0 && idx < m.playing

	switch {
	case isCursor && isPlaying:
		return s.Cursor.Inherit(s.Playing)
	case isCursor:
		return s.Cursor.Inherit(s.Base)
	case isPlaying:
		return s.Playing
	case isPlayed:
		return s.Muted
	default:
		return s.Base
	}
}
