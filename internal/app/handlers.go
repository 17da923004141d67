// internal/app/handlers.go

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vinyl/internal/errmsg"
	"github.com/llehouerou/vinyl/internal/keymap"
	"github.com/llehouerou/vinyl/internal/state"
)

// apply runs a resolved action. Every applied action marks the view
// dirty; daemon failures surface as a notice and leave the local model
// untouched, the next poll re-syncs whatever the daemon actually did.
func (m *Model) apply(action keymap.Action) tea.Cmd {
	m.dirty = true

	switch action {
	case keymap.ActionQuit:
		return m.doShutdown(nil)

	case keymap.ActionHelp:
		m.openHelp()

	case keymap.ActionTogglePlaylist:
		m.showPlaylist = !m.showPlaylist
		m.applyLayout()
		m.savePrefs()

	case keymap.ActionToggleArtOnly:
		m.artOnly = !m.artOnly
		m.applyLayout()
		m.savePrefs()

	case keymap.ActionPlayPause:
		m.commandErr(errmsg.OpPlayPause, m.Daemon.Toggle(m.snap.State))

	case keymap.ActionNextTrack:
		m.commandErr(errmsg.OpNextTrack, m.Daemon.Next())

	case keymap.ActionPrevTrack:
		m.commandErr(errmsg.OpPrevTrack, m.Daemon.Previous())

	case keymap.ActionVolumeUp:
		m.commandErr(errmsg.OpSetVolume, m.Daemon.SetVolume(m.snap.Volume+m.Config.VolumeStep))

	case keymap.ActionVolumeDown:
		m.commandErr(errmsg.OpSetVolume, m.Daemon.SetVolume(m.snap.Volume-m.Config.VolumeStep))

	case keymap.ActionToggleRandom:
		m.commandErr(errmsg.OpToggleRandom, m.Daemon.SetRandom(!m.snap.Random))

	case keymap.ActionToggleRepeat:
		m.commandErr(errmsg.OpToggleRepeat, m.Daemon.SetRepeat(!m.snap.Repeat))

	case keymap.ActionSelectUp:
		m.moveSelection(-1)

	case keymap.ActionSelectDown:
		m.moveSelection(1)

	case keymap.ActionPlaySelected:
		if m.Queue.Len() > 0 {
			m.commandErr(errmsg.OpPlayIndex, m.Daemon.PlayIndex(m.Queue.Selected()))
		}

	case keymap.ActionMoveTrackUp:
		m.moveTrack(-1)

	case keymap.ActionMoveTrackDown:
		m.moveTrack(1)

	case keymap.ActionDeleteTrack:
		if m.Queue.Len() > 0 {
			m.commandErr(errmsg.OpQueueDelete, m.Daemon.Delete(m.Queue.Selected()))
		}
	}
	return nil
}

// moveSelection moves the playlist cursor and suspends follow so the
// cursor does not immediately snap back to the playing track.
func (m *Model) moveSelection(delta int) {
	if m.Queue.Len() == 0 {
		return
	}
	m.Queue.MoveSelection(delta)
	m.followWait = followDelaySeconds
}

// moveTrack swaps the selected track with its neighbor. Unlike the
// selection cursor this does not wrap: moving the first track up is a
// no-op, not a jump to the end of the queue.
func (m *Model) moveTrack(delta int) {
	i := m.Queue.Selected()
	j := i + delta
	if m.Queue.Len() == 0 || j < 0 || j >= m.Queue.Len() {
		return
	}
	if err := m.Daemon.Swap(i, j); err != nil {
		m.setNotice(errmsg.Format(errmsg.OpQueueSwap, err))
		return
	}
	m.Queue.MoveSelection(delta)
	m.followWait = followDelaySeconds
}

func (m *Model) savePrefs() {
	m.StateMgr.SaveUIPrefs(state.UIPrefs{ArtOnly: m.artOnly, ShowPlaylist: m.showPlaylist})
}

// commandErr records a failed daemon command as a notice. There is no
// retry: the command is simply lost and the screen keeps showing the
// daemon's actual state.
func (m *Model) commandErr(op errmsg.Op, err error) {
	if err != nil {
		m.setNotice(errmsg.Format(op, err))
	}
}

// setNotice shows s on the bottom screen row and restarts its expiry.
// Re-setting the same text only refreshes the timer, so a persistent
// failure does not force a repaint every tick.
func (m *Model) setNotice(s string) {
	if m.notice != s {
		m.notice = s
		m.dirty = true
	}
	m.noticeLeft = noticeSeconds * framesPerSecond
}
