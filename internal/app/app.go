// internal/app/app.go

// Package app contains the root bubbletea model and the fixed-rate
// render loop driving it.
package app

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vinyl/internal/albumart"
	"github.com/llehouerou/vinyl/internal/albumart/fetch"
	"github.com/llehouerou/vinyl/internal/config"
	"github.com/llehouerou/vinyl/internal/keymap"
	"github.com/llehouerou/vinyl/internal/lastfm"
	"github.com/llehouerou/vinyl/internal/mpd"
	"github.com/llehouerou/vinyl/internal/mpris"
	"github.com/llehouerou/vinyl/internal/state"
	"github.com/llehouerou/vinyl/internal/ui/layout"
	"github.com/llehouerou/vinyl/internal/ui/queuepanel"
	"github.com/llehouerou/vinyl/internal/ui/trackinfo"
)

// ExitStatus carries the reason the loop terminated, reported after the
// terminal is restored.
type ExitStatus struct {
	Err error
}

// Model is the root application model containing all state.
type Model struct {
	Config    *config.Config
	Daemon    mpd.Interface
	StateMgr  state.Interface
	Keys      *keymap.Resolver
	Layout    *layout.Engine
	Queue     queuepanel.Model
	Art       *albumart.Presenter
	Fetch     *fetch.Fetcher
	Lastfm    lastfm.Submitter // nil when scrobbling is not configured
	Scrobbles lastfm.Tracker
	Mpris     *mpris.Store

	// Redial reopens the daemon connection after a poll failure. Left
	// nil, poll failures only flag the connection loss on screen.
	Redial func() (mpd.Interface, error)

	width  int
	height int
	geom   layout.Geometry

	snap           mpd.Snapshot
	havePoll       bool
	playlistLoaded bool
	hadPlayback    bool

	showPlaylist bool
	artOnly      bool

	showHelp bool
	help     viewport.Model

	// Seconds before the playlist cursor snaps back to the playing
	// track after a manual selection move.
	followWait int

	tickCount  int
	redialWait int // ticks until the next reconnect attempt

	dirty    bool
	rendered bool
	view     string
	wipe     string // image delete escapes to flush with the next view

	notice     string
	noticeLeft int // ticks until the notice clears

	artURI string // track the auto theme color was extracted from

	glyphs trackinfo.Glyphs
	exit   ExitStatus
}

// New creates the application model from configuration and the already
// opened collaborators. Saved interface toggles win over the configured
// defaults; a missing saved state falls back to the config file.
func New(cfg *config.Config, font layout.FontSize, daemon mpd.Interface, stateMgr state.Interface, art *albumart.Presenter, scrobbler lastfm.Submitter) (Model, error) {
	bindings, err := keymap.WithOverrides(cfg.Bindings)
	if err != nil {
		return Model{}, err
	}

	showPlaylist := cfg.ShowPlaylistDefault()
	artOnly := cfg.ArtOnly
	if prefs, err := stateMgr.GetUIPrefs(); err == nil && prefs != nil {
		showPlaylist = prefs.ShowPlaylist
		artOnly = prefs.ArtOnly
	}

	return Model{
		Config:       cfg,
		Daemon:       daemon,
		StateMgr:     stateMgr,
		Keys:         keymap.NewResolver(bindings),
		Layout:       layout.NewEngine(font),
		Queue:        queuepanel.New(),
		Art:          art,
		Fetch:        fetch.New(daemon, cfg.MusicDirectory),
		Lastfm:       scrobbler,
		Mpris:        mpris.NewStore(),
		showPlaylist: showPlaylist,
		artOnly:      artOnly,
		glyphs:       trackinfo.Glyphs{Filled: cfg.Progress.Filled, Empty: cfg.Progress.Empty},
		dirty:        true,
	}, nil
}

// Init implements tea.Model. It arms the first tick and, when scrobbling
// is configured, drains scrobbles left queued by a previous run.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(tickInterval)}
	if m.Lastfm != nil {
		cmds = append(cmds, lastfm.RetryPendingCmd(m.Lastfm, m.StateMgr))
	}
	return tea.Batch(cmds...)
}

// Exit returns the termination status recorded by the shutdown path.
func (m Model) Exit() ExitStatus {
	return m.exit
}

// doShutdown records the exit reason, flushes persistent state and closes
// the daemon connection, then quits the program loop.
func (m *Model) doShutdown(diag error) tea.Cmd {
	m.exit = ExitStatus{Err: diag}
	_ = m.StateMgr.Close()
	_ = m.Daemon.Close()
	return tea.Quit
}
