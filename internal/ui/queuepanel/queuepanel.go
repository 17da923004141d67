package queuepanel

import (
	"github.com/llehouerou/vinyl/internal/mpd"
)

// Model represents the playlist panel state. The daemon owns the queue;
// the panel only tracks the local selection and renders what the last
// poll reported.
type Model struct {
	tracks   []mpd.Track
	playing  int // queue index of the playing track, -1 when none
	selected int
	width    int
	height   int
}

// New creates an empty playlist panel.
func New() Model {
	return Model{playing: -1}
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTracks replaces the queue contents, clamping the selection into the
// new range.
func (m *Model) SetTracks(tracks []mpd.Track) {
	m.tracks = tracks
	if len(tracks) == 0 {
		m.selected = 0
		return
	}
	if m.selected >= len(tracks) {
		m.selected = len(tracks) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// SetPlaying records which queue index is currently playing (-1 for none).
func (m *Model) SetPlaying(index int) {
	m.playing = index
}

// Len returns the number of queue entries.
func (m Model) Len() int {
	return len(m.tracks)
}

// Selected returns the selection index. Meaningless when the queue is empty.
func (m Model) Selected() int {
	return m.selected
}

// SelectedTrack returns the selected track, or false when the queue is empty.
func (m Model) SelectedTrack() (mpd.Track, bool) {
	if len(m.tracks) == 0 {
		return mpd.Track{}, false
	}
	return m.tracks[m.selected], true
}
