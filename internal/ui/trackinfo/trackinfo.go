// Package trackinfo renders the text block at the bottom of the art
// region: track metadata, a progress bar and a status line.
package trackinfo

import (
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/vinyl/internal/mpd"
	"github.com/llehouerou/vinyl/internal/ui/layout"
	"github.com/llehouerou/vinyl/internal/ui/render"
	"github.com/llehouerou/vinyl/internal/ui/styles"
)

// BlockRows is the height of the block: up to three metadata rows, the
// progress bar and the status line. Two-row text layouts pad with a blank
// row so the bar and status always sit on the bottom two rows.
const BlockRows = layout.TextReserve - 1

// Glyphs is the progress bar glyph pair, one display cell each.
type Glyphs struct {
	Filled string
	Empty  string
}

// DefaultGlyphs matches the configuration defaults.
var DefaultGlyphs = Glyphs{Filled: "█", Empty: "░"}

// State holds everything needed to render the block.
type State struct {
	Title    string
	Artist   string
	Album    string
	Playing  bool
	Paused   bool
	Elapsed  time.Duration
	Duration time.Duration
	Volume   int
	Repeat   bool
	Random   bool
}

// NewState builds a render State from a playback snapshot.
func NewState(snap mpd.Snapshot) State {
	return State{
		Title:    snap.Current.DisplayTitle(),
		Artist:   snap.Current.Artist,
		Album:    snap.Current.Album,
		Playing:  snap.State == mpd.Playing,
		Paused:   snap.State == mpd.Paused,
		Elapsed:  snap.Elapsed,
		Duration: snap.Duration,
		Volume:   snap.Volume,
		Repeat:   snap.Repeat,
		Random:   snap.Random,
	}
}

// Render returns the block as exactly BlockRows lines, each width cells
// wide. Width must be positive.
func Render(s State, width int, glyphs Glyphs) string {
	if width <= 0 {
		return ""
	}
	st := styles.T().S()

	_, textLines := layout.FitText(s.Title, s.Artist, s.Album, width)

	lines := make([]string, 0, BlockRows)
	lines = append(lines, st.Title.Render(render.TruncateAndPad(textLines[0], width)))
	for _, l := range textLines[1:] {
		lines = append(lines, st.Muted.Render(render.TruncateAndPad(l, width)))
	}
	for len(lines) < BlockRows-2 {
		lines = append(lines, render.EmptyLine(width))
	}

	lines = append(lines,
		RenderProgressBar(s.Elapsed, s.Duration, width, glyphs),
		RenderStatusLine(s, width),
	)

	return strings.Join(lines, "\n")
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
