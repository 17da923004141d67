// internal/app/update.go

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vinyl/internal/albumart/fetch"
	"github.com/llehouerou/vinyl/internal/errmsg"
	"github.com/llehouerou/vinyl/internal/lastfm"
	"github.com/llehouerou/vinyl/internal/mpd"
	"github.com/llehouerou/vinyl/internal/mpris"
)

// Update handles messages and returns the updated model and commands.
// Keys and external requests only mutate state and mark the view dirty;
// the periodic tick is the single place a redraw can happen, after all
// queued messages have been applied.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.handleTick()

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case mpris.CommandMsg:
		return m.handleMprisCommand(msg)

	case mpris.SetVolumeMsg:
		m.commandErr(errmsg.OpSetVolume, m.Daemon.SetVolume(msg.Volume))
		m.dirty = true
		return m, nil

	case mpris.SetRepeatMsg:
		m.commandErr(errmsg.OpToggleRepeat, m.Daemon.SetRepeat(msg.Repeat))
		m.dirty = true
		return m, nil

	case mpris.SetRandomMsg:
		m.commandErr(errmsg.OpToggleRandom, m.Daemon.SetRandom(msg.Random))
		m.dirty = true
		return m, nil

	case lastfm.NowPlayingResultMsg:
		// Best effort: a missed announcement corrects itself on the
		// next track.
		return m, nil

	case lastfm.ScrobbleResultMsg:
		// A failed submission is normally queued for retry; when even the
		// queue write failed the play is lost, which is worth a notice.
		if msg.Err != nil && !msg.Queued {
			m.setNotice(errmsg.Format(errmsg.OpScrobble, msg.Err))
		}
		return m, nil

	case lastfm.RetryPendingMsg:
		if m.Lastfm != nil {
			return m, lastfm.RetryPendingCmd(m.Lastfm, m.StateMgr)
		}
		return m, nil

	case lastfm.RetryResultMsg:
		if m.Lastfm != nil {
			return m, lastfm.RetryTickCmd()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.applyLayout()
	return m, nil
}

// handleKey resolves the key through the binding table and applies the
// action. Unbound keys, playlist actions while the pane is hidden, and
// most actions while the daemon is stopped are dropped.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.Keys.Resolve(msg.String())

	if m.showHelp {
		return m.handleHelpKey(msg, action)
	}

	if action == "" {
		return m, nil
	}
	if m.snap.State == mpd.Stopped && !action.AllowedWhenStopped() {
		return m, nil
	}
	if action.PlaylistOnly() && m.geom.PlaylistCols <= 0 {
		return m, nil
	}
	cmd := m.apply(action)
	return m, cmd
}

// handleTick runs one iteration of the render loop: poll the daemon,
// decide whether the screen needs repainting, decay the timed counters,
// and re-arm the tick for the remainder of the frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	started := time.Now()
	m.tickCount++
	if m.redialWait > 0 {
		m.redialWait--
	}

	cmds := m.pollDaemon()

	if m.Config.Autoclose && m.hadPlayback && m.snap.State == mpd.Stopped {
		cmd := m.doShutdown(nil)
		return m, cmd
	}

	if m.noticeLeft > 0 {
		m.noticeLeft--
		if m.noticeLeft == 0 {
			m.notice = ""
			m.dirty = true
		}
	}

	if !m.rendered || m.dirty || (m.showHelp && m.tickCount%framesPerSecond == 0) {
		m.view = m.render()
		m.rendered = true
		m.dirty = false
	}

	if m.followWait > 0 && m.tickCount%framesPerSecond == 0 {
		m.followWait--
	}

	cmds = append(cmds, tickCmd(tickInterval-time.Since(started)))
	return m, tea.Batch(cmds...)
}

// pollDaemon reads a fresh snapshot and applies whatever changed to the
// local model. Returns async submission commands when a scrobble event
// fired.
func (m *Model) pollDaemon() []tea.Cmd {
	snap, err := m.Daemon.Snapshot()
	if err != nil {
		m.reconnect(err)
		return nil
	}

	ch := classify(m.snap, snap, m.havePoll)
	wasStopped := m.havePoll && m.snap.State == mpd.Stopped
	m.snap = snap
	m.havePoll = true
	if snap.State == mpd.Playing {
		m.hadPlayback = true
	}

	if ch.playlist || !m.playlistLoaded {
		tracks, err := m.Daemon.Playlist()
		if err != nil {
			m.setNotice(errmsg.Format(errmsg.OpPlaylistFetch, err))
		} else {
			m.Queue.SetTracks(tracks)
			m.playlistLoaded = true
		}
	}
	m.Queue.SetPlaying(snap.SongIndex)

	if ch.track {
		m.refreshArt()
		if m.followWait == 0 {
			m.Queue.SyncToPlaying()
		}
	}
	if ch.state {
		switch {
		case snap.State == mpd.Stopped:
			m.wipe += m.Art.Clear()
		case wasStopped:
			m.refreshArt()
		}
	}
	if ch.display {
		m.dirty = true
	}

	m.Mpris.Update(snap)

	if m.Lastfm == nil {
		return nil
	}
	var cmds []tea.Cmd
	nowPlaying, scrobble := m.Scrobbles.Observe(snap, time.Now())
	if nowPlaying {
		cmds = append(cmds, lastfm.NowPlayingCmd(m.Lastfm, m.Scrobbles.Track(snap)))
	}
	if scrobble {
		cmds = append(cmds, lastfm.ScrobbleCmd(m.Lastfm, m.StateMgr, m.Scrobbles.Track(snap)))
	}
	return cmds
}

// reconnect flags the lost connection and attempts one redial per
// second. The last good snapshot stays on screen in the meantime.
func (m *Model) reconnect(cause error) {
	m.setNotice(errmsg.Format(errmsg.OpDaemonStatus, cause))
	if m.Redial == nil || m.redialWait > 0 {
		return
	}
	conn, err := m.Redial()
	if err != nil {
		m.redialWait = framesPerSecond
		return
	}
	_ = m.Daemon.Close()
	m.Daemon = conn
	m.Fetch = fetch.New(conn, m.Config.MusicDirectory)
	// The daemon may have restarted with a reset playlist version, so
	// force a refetch on the next poll.
	m.playlistLoaded = false
	m.setNotice("Reconnected to MPD")
}

// handleMprisCommand applies a desktop media-control request. These
// bypass the keyboard gating: a remote Play while stopped is the one way
// playback can start from inside the application.
func (m Model) handleMprisCommand(msg mpris.CommandMsg) (tea.Model, tea.Cmd) {
	switch msg.Command {
	case mpris.CmdPlayPause:
		m.commandErr(errmsg.OpPlayPause, m.Daemon.Toggle(m.snap.State))
	case mpris.CmdPlay:
		m.commandErr(errmsg.OpPlayPause, m.Daemon.Play())
	case mpris.CmdPause:
		if m.snap.State == mpd.Playing {
			m.commandErr(errmsg.OpPlayPause, m.Daemon.Toggle(m.snap.State))
		}
	case mpris.CmdStop:
		m.commandErr(errmsg.OpPlayPause, m.Daemon.Stop())
	case mpris.CmdNext:
		m.commandErr(errmsg.OpNextTrack, m.Daemon.Next())
	case mpris.CmdPrevious:
		m.commandErr(errmsg.OpPrevTrack, m.Daemon.Previous())
	}
	m.dirty = true
	return m, nil
}
