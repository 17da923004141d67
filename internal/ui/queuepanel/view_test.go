package queuepanel

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vinyl/internal/mpd"
)

// stripANSI removes ANSI escape codes from a string for easier testing.
func stripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return re.ReplaceAllString(s, "")
}

func TestView_EmptyQueue(t *testing.T) {
	m := New()
	m.SetSize(60, 10)

	stripped := stripANSI(m.View())

	if !strings.Contains(stripped, "Playlist (0/0)") {
		t.Errorf("empty queue should show 'Playlist (0/0)', got: %s", stripped)
	}
}

func TestView_Header(t *testing.T) {
	m := New()
	m.SetTracks(testTracks(5))
	m.SetPlaying(1)
	m.SetSize(60, 10)

	stripped := stripANSI(m.View())

	if !strings.Contains(stripped, "Playlist (2/5)") {
		t.Errorf("should show 'Playlist (2/5)', got: %s", stripped)
	}
}

func TestView_TrackContent(t *testing.T) {
	m := New()
	m.SetTracks([]mpd.Track{
		{File: "a.flac", Title: "Test Song", Artist: "Test Artist"},
	})
	m.SetSize(60, 10)

	stripped := stripANSI(m.View())

	if !strings.Contains(stripped, "Test Song") {
		t.Errorf("should contain track title, got: %s", stripped)
	}
	if !strings.Contains(stripped, "Test Artist") {
		t.Errorf("should contain track artist, got: %s", stripped)
	}
}

func TestView_UntaggedTrackShowsFilename(t *testing.T) {
	m := New()
	m.SetTracks([]mpd.Track{{File: "music/03 - untitled.flac"}})
	m.SetSize(60, 10)

	stripped := stripANSI(m.View())

	if !strings.Contains(stripped, "03 - untitled") {
		t.Errorf("untagged track should show file name, got: %s", stripped)
	}
}

func TestView_PlayingIndicator(t *testing.T) {
	m := New()
	m.SetTracks(testTracks(3))
	m.SetPlaying(0)
	m.SetSize(60, 10)

	stripped := stripANSI(m.View())

	if !strings.Contains(stripped, playingSymbol) {
		t.Errorf("should contain playing symbol, got: %s", stripped)
	}
}

func TestView_NoIndicatorWhenStopped(t *testing.T) {
	m := New()
	m.SetTracks(testTracks(3))
	m.SetPlaying(-1)
	m.SetSize(60, 10)

	stripped := stripANSI(m.View())

	if strings.Contains(stripped, playingSymbol) {
		t.Errorf("should not contain playing symbol when stopped, got: %s", stripped)
	}
}

func TestView_ZeroSize(t *testing.T) {
	m := New()
	m.SetTracks(testTracks(1))

	if out := m.View(); out != "" {
		t.Errorf("zero size should return empty string, got: %q", out)
	}
}

func TestView_LineWidths(t *testing.T) {
	m := New()
	m.SetTracks(testTracks(3))
	m.SetSize(40, 8)

	for i, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
}

func TestView_LineCount(t *testing.T) {
	m := New()
	m.SetTracks(testTracks(2))
	m.SetSize(40, 8)

	if n := len(strings.Split(m.View(), "\n")); n != 8 {
		t.Errorf("view has %d lines, want 8", n)
	}
}

func TestView_ScrollsToSelection(t *testing.T) {
	tracks := make([]mpd.Track, 30)
	for i := range tracks {
		tracks[i] = mpd.Track{File: "x.flac", Title: "Track " + string(rune('A'+i)), Artist: "Artist"}
	}
	m := New()
	m.SetTracks(tracks)
	m.SetSize(60, 10) // 8 list rows
	m.selected = 20

	stripped := stripANSI(m.View())

	if !strings.Contains(stripped, "Track "+string(rune('A'+20))) {
		t.Errorf("selected track should be visible, got: %s", stripped)
	}
	if strings.Contains(stripped, "Track A ") {
		t.Errorf("first track should be scrolled out, got: %s", stripped)
	}
}

func TestTrackStyle_HighlightMerge(t *testing.T) {
	m := New()
	m.SetTracks(testTracks(5))
	m.SetPlaying(2)
	m.selected = 2

	style := m.trackStyle(2)

	if !style.GetReverse() {
		t.Error("selected playing row should render reverse-video")
	}
	if !style.GetBold() {
		t.Error("selected playing row should keep the playing bold")
	}
}

func TestTrackStyle_SelectionOnly(t *testing.T) {
	m := New()
	m.SetTracks(testTracks(5))
	m.SetPlaying(2)
	m.selected = 4

	if style := m.trackStyle(4); !style.GetReverse() || style.GetBold() {
		t.Error("selected row should be reverse-video without the playing bold")
	}
	if style := m.trackStyle(2); style.GetReverse() || !style.GetBold() {
		t.Error("playing row should be bold without reverse-video")
	}
}
