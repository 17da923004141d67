// internal/app/app_test.go

package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vinyl/internal/albumart"
	"github.com/llehouerou/vinyl/internal/albumart/fetch"
	"github.com/llehouerou/vinyl/internal/config"
	"github.com/llehouerou/vinyl/internal/keymap"
	"github.com/llehouerou/vinyl/internal/mpd"
	"github.com/llehouerou/vinyl/internal/mpris"
	"github.com/llehouerou/vinyl/internal/state"
	"github.com/llehouerou/vinyl/internal/ui/layout"
	"github.com/llehouerou/vinyl/internal/ui/queuepanel"
)

func newTestModel() Model {
	daemon := mpd.NewMock()
	m := Model{
		Config:   &config.Config{VolumeStep: 5},
		Daemon:   daemon,
		StateMgr: state.NewMock(),
		Keys:     keymap.NewResolver(keymap.Bindings),
		Layout:   layout.NewEngine(layout.FontSize{W: 10, H: 20}),
		Queue:    queuepanel.New(),
		Art:      albumart.NewPresenter(nil, nil),
		Mpris:    mpris.NewStore(),

		// The literal bypasses New(), which defaults the playlist pane
		// to shown; startPlaying sizes the terminal on that assumption.
		showPlaylist: true,
	}
	m.Fetch = fetch.New(daemon, "")
	return m
}

func queueTracks(n int) []mpd.Track {
	tracks := make([]mpd.Track, n)
	for i := range tracks {
		tracks[i] = mpd.Track{
			File:     fmt.Sprintf("artist/album/%02d.flac", i),
			Title:    fmt.Sprintf("Track %d", i),
			Artist:   "Artist",
			Album:    "Album",
			Pos:      i,
			Duration: 3 * time.Minute,
		}
	}
	return tracks
}

// startPlaying sizes the terminal wide enough for the playlist pane,
// loads n tracks into the mock daemon with track `playing` active, and
// runs one tick so the model has polled.
func startPlaying(t *testing.T, m Model, n, playing int) Model {
	t.Helper()
	mock, ok := m.Daemon.(*mpd.Mock)
	if !ok {
		t.Fatal("expected mock daemon")
	}
	tracks := queueTracks(n)
	mock.SetPlaylist(tracks)
	mock.SetSnapshot(mpd.Snapshot{
		State:           mpd.Playing,
		Current:         tracks[playing],
		SongIndex:       playing,
		Elapsed:         5 * time.Second,
		Duration:        tracks[playing].Duration,
		Volume:          50,
		PlaylistVersion: 1,
		PlaylistLength:  n,
	})
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 132, Height: 40})
	m, _ = updateModel(t, m, TickMsg(time.Now()))
	return m
}

// startStopped is startPlaying for a daemon with a queue but no
// playback.
func startStopped(t *testing.T, m Model, n int) Model {
	t.Helper()
	mock, ok := m.Daemon.(*mpd.Mock)
	if !ok {
		t.Fatal("expected mock daemon")
	}
	mock.SetPlaylist(queueTracks(n))
	mock.SetSnapshot(mpd.Snapshot{
		State:           mpd.Stopped,
		SongIndex:       -1,
		PlaylistVersion: 1,
		PlaylistLength:  n,
	})
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 132, Height: 40})
	m, _ = updateModel(t, m, TickMsg(time.Now()))
	return m
}

func TestNew_ConfigDefaults(t *testing.T) {
	m, err := New(&config.Config{}, layout.FontSize{W: 10, H: 20}, mpd.NewMock(), state.NewMock(), albumart.NewPresenter(nil, nil), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !m.showPlaylist {
		t.Error("playlist should default to shown")
	}
	if m.artOnly {
		t.Error("art-only should default to off")
	}
}

func TestNew_SavedPrefsWinOverConfig(t *testing.T) {
	st := state.NewMock()
	st.SetUIPrefs(state.UIPrefs{ArtOnly: true, ShowPlaylist: false})

	m, err := New(&config.Config{}, layout.FontSize{W: 10, H: 20}, mpd.NewMock(), st, albumart.NewPresenter(nil, nil), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m.showPlaylist {
		t.Error("saved prefs should hide the playlist")
	}
	if !m.artOnly {
		t.Error("saved prefs should enable art-only")
	}
}

func TestNew_InvalidBindingOverride(t *testing.T) {
	cfg := &config.Config{Bindings: map[string]string{"no_such_action": "x"}}
	_, err := New(cfg, layout.FontSize{W: 10, H: 20}, mpd.NewMock(), state.NewMock(), albumart.NewPresenter(nil, nil), nil)
	if err == nil {
		t.Fatal("expected error for unknown binding action")
	}
}

func TestUpdate_WindowSizeMsg_RecomputesLayout(t *testing.T) {
	m := newTestModel()
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 132, Height: 40})
	if m.width != 132 || m.height != 40 {
		t.Errorf("size = %dx%d, want 132x40", m.width, m.height)
	}
	if m.geom.PlaylistCols <= 0 {
		t.Error("132x40 should fit the playlist pane")
	}

	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	if m.geom.PlaylistCols != 0 {
		t.Errorf("PlaylistCols = %d, want 0 in a narrow terminal", m.geom.PlaylistCols)
	}
}

func TestUpdate_KeyMsg_Quit(t *testing.T) {
	m := startPlaying(t, newTestModel(), 3, 0)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	daemonMock, _ := m.Daemon.(*mpd.Mock)
	if !daemonMock.IsClosed() {
		t.Error("expected daemon connection to be closed")
	}
	stateMock, _ := m.StateMgr.(*state.Mock)
	if !stateMock.IsClosed() {
		t.Error("expected state manager to be closed")
	}
}

func TestUpdate_TickMsg_RendersAndRearms(t *testing.T) {
	m := newTestModel()
	m = startPlaying(t, m, 3, 1)

	if m.view == "" {
		t.Fatal("expected a rendered view after the first tick")
	}
	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected the tick to re-arm")
	}
}

func TestUpdate_TickMsg_SkipsRedrawWhenClean(t *testing.T) {
	m := startPlaying(t, newTestModel(), 3, 0)

	// Nothing observable changes between these polls.
	m.view = "sentinel"
	m, _ = updateModel(t, m, TickMsg(time.Now()))
	if m.view != "sentinel" {
		t.Error("unchanged state should not rebuild the view")
	}

	mock, _ := m.Daemon.(*mpd.Mock)
	snap := m.snap
	snap.Volume = 60
	mock.SetSnapshot(snap)
	m, _ = updateModel(t, m, TickMsg(time.Now()))
	if m.view == "sentinel" {
		t.Error("a visible change should rebuild the view")
	}
}

func TestUpdate_KeyMsg_Volume(t *testing.T) {
	m := startPlaying(t, newTestModel(), 3, 0)
	mock, _ := m.Daemon.(*mpd.Mock)

	m, _ = updateModel(t, m, keyMsg("+"))
	m, _ = updateModel(t, m, keyMsg("-"))

	want := []int{55, 45}
	if len(mock.Volumes) != len(want) {
		t.Fatalf("volumes = %v, want %v", mock.Volumes, want)
	}
	for i := range want {
		if mock.Volumes[i] != want[i] {
			t.Errorf("volumes[%d] = %d, want %d", i, mock.Volumes[i], want[i])
		}
	}
}

func TestUpdate_KeyMsg_StoppedGating(t *testing.T) {
	m := startStopped(t, newTestModel(), 3)
	mock, _ := m.Daemon.(*mpd.Mock)

	// Playback keys are dropped while stopped.
	m, _ = updateModel(t, m, keyMsg(" "))
	m, _ = updateModel(t, m, keyMsg("n"))
	m, _ = updateModel(t, m, keyMsg("enter"))
	if len(mock.Commands) != 0 {
		t.Errorf("commands while stopped = %v, want none", mock.Commands)
	}
	if len(mock.Played) != 0 {
		t.Errorf("played = %v, want none", mock.Played)
	}

	// Selection still moves.
	before := m.Queue.Selected()
	m, _ = updateModel(t, m, keyMsg("j"))
	if m.Queue.Selected() == before {
		t.Error("selection should move while stopped")
	}

	// Quit still works.
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("quit should work while stopped")
	}
}

func TestUpdate_KeyMsg_PlaylistHiddenGating(t *testing.T) {
	m := startPlaying(t, newTestModel(), 3, 0)
	mock, _ := m.Daemon.(*mpd.Mock)

	m, _ = updateModel(t, m, keyMsg("a")) // art-only hides the playlist
	if m.geom.PlaylistCols != 0 {
		t.Fatal("expected hidden playlist in art-only mode")
	}

	before := m.Queue.Selected()
	m, _ = updateModel(t, m, keyMsg("j"))
	m, _ = updateModel(t, m, keyMsg("enter"))
	if m.Queue.Selected() != before {
		t.Error("selection should not move while the playlist is hidden")
	}
	if len(mock.Played) != 0 {
		t.Errorf("played = %v, want none", mock.Played)
	}

	// Playback keys still work without the pane.
	m, _ = updateModel(t, m, keyMsg("n"))
	if len(mock.Commands) == 0 || mock.Commands[len(mock.Commands)-1] != "next" {
		t.Errorf("commands = %v, want next", mock.Commands)
	}
}

func TestUpdate_KeyMsg_CommandFailureNotice(t *testing.T) {
	m := startPlaying(t, newTestModel(), 3, 0)
	mock, _ := m.Daemon.(*mpd.Mock)
	mock.FailCommands(errors.New("connection reset"))

	m, _ = updateModel(t, m, keyMsg(" "))
	if m.notice == "" {
		t.Fatal("expected a notice for the failed command")
	}
	if !m.dirty {
		t.Error("failed command should mark the view dirty")
	}
	// Local state is untouched; the daemon still got the command.
	if len(mock.Commands) != 1 || mock.Commands[0] != "toggle" {
		t.Errorf("commands = %v, want [toggle]", mock.Commands)
	}
}

func TestUpdate_KeyMsg_TogglePlaylistPersists(t *testing.T) {
	m := startPlaying(t, newTestModel(), 3, 0)
	stateMock, _ := m.StateMgr.(*state.Mock)

	m, _ = updateModel(t, m, keyMsg("v"))
	if m.geom.PlaylistCols != 0 {
		t.Error("toggle should hide the playlist")
	}
	prefs, err := stateMock.GetUIPrefs()
	if err != nil || prefs == nil {
		t.Fatalf("GetUIPrefs() = %v, %v, want saved prefs", prefs, err)
	}
	if prefs.ShowPlaylist {
		t.Error("saved prefs should record the hidden playlist")
	}

	m, _ = updateModel(t, m, keyMsg("v"))
	prefs, _ = stateMock.GetUIPrefs()
	if prefs == nil || !prefs.ShowPlaylist {
		t.Error("second toggle should restore and persist the playlist")
	}
}

func TestUpdate_MprisCommands(t *testing.T) {
	m := startPlaying(t, newTestModel(), 3, 0)
	mock, _ := m.Daemon.(*mpd.Mock)

	m, _ = updateModel(t, m, mpris.CommandMsg{Command: mpris.CmdNext})
	m, _ = updateModel(t, m, mpris.CommandMsg{Command: mpris.CmdPrevious})
	m, _ = updateModel(t, m, mpris.SetVolumeMsg{Volume: 30})

	want := []string{"next", "previous", "setvolume"}
	if len(mock.Commands) != len(want) {
		t.Fatalf("commands = %v, want %v", mock.Commands, want)
	}
	for i := range want {
		if mock.Commands[i] != want[i] {
			t.Errorf("commands[%d] = %q, want %q", i, mock.Commands[i], want[i])
		}
	}
	if len(mock.Volumes) != 1 || mock.Volumes[0] != 30 {
		t.Errorf("volumes = %v, want [30]", mock.Volumes)
	}
}

func TestUpdate_MprisBypassesStoppedGating(t *testing.T) {
	m := startStopped(t, newTestModel(), 3)
	mock, _ := m.Daemon.(*mpd.Mock)

	m, _ = updateModel(t, m, mpris.CommandMsg{Command: mpris.CmdPlay})
	if len(mock.Commands) != 1 || mock.Commands[0] != "play" {
		t.Errorf("commands = %v, want [play]", mock.Commands)
	}
}

func TestUpdate_TickMsg_AutocloseAfterPlayback(t *testing.T) {
	m := newTestModel()
	m.Config.Autoclose = true
	m = startPlaying(t, m, 3, 0)
	mock, _ := m.Daemon.(*mpd.Mock)

	mock.SetSnapshot(mpd.Snapshot{
		State:           mpd.Stopped,
		SongIndex:       -1,
		PlaylistVersion: 1,
		PlaylistLength:  3,
	})
	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected shutdown command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg after playback ended")
	}
	if !mock.IsClosed() {
		t.Error("expected daemon connection to be closed")
	}
}

func TestUpdate_TickMsg_NoAutocloseBeforePlayback(t *testing.T) {
	m := newTestModel()
	m.Config.Autoclose = true
	m = startStopped(t, m, 3)
	mock, _ := m.Daemon.(*mpd.Mock)

	m, _ = updateModel(t, m, TickMsg(time.Now()))
	if mock.IsClosed() {
		t.Error("should not autoclose before any playback was seen")
	}
}

func TestUpdate_TickMsg_ReconnectFlagsLoss(t *testing.T) {
	m := startPlaying(t, newTestModel(), 3, 0)
	mock, _ := m.Daemon.(*mpd.Mock)
	mock.FailSnapshot(errors.New("broken pipe"))

	m, _ = updateModel(t, m, TickMsg(time.Now()))
	if m.notice == "" {
		t.Fatal("expected a connection loss notice")
	}
	if mock.IsClosed() {
		t.Error("without Redial the old connection must stay")
	}
}

func TestUpdate_TickMsg_ReconnectSwapsConnection(t *testing.T) {
	m := startPlaying(t, newTestModel(), 3, 0)
	old, _ := m.Daemon.(*mpd.Mock)
	old.FailSnapshot(errors.New("broken pipe"))

	fresh := mpd.NewMock()
	fresh.SetPlaylist(queueTracks(2))
	fresh.SetSnapshot(mpd.Snapshot{
		State:           mpd.Playing,
		Current:         queueTracks(2)[0],
		SongIndex:       0,
		Volume:          50,
		PlaylistVersion: 7,
		PlaylistLength:  2,
	})
	m.Redial = func() (mpd.Interface, error) { return fresh, nil }

	m, _ = updateModel(t, m, TickMsg(time.Now()))
	if got, _ := m.Daemon.(*mpd.Mock); got != fresh {
		t.Fatal("expected the daemon connection to be swapped")
	}
	if !old.IsClosed() {
		t.Error("expected the dead connection to be closed")
	}
	if m.notice != "Reconnected to MPD" {
		t.Errorf("notice = %q, want reconnect confirmation", m.notice)
	}

	// The next poll refetches the playlist from the new connection.
	m, _ = updateModel(t, m, TickMsg(time.Now()))
	if m.Queue.Len() != 2 {
		t.Errorf("queue length = %d, want 2 after reconnect", m.Queue.Len())
	}
}
