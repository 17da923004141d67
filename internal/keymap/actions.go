// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action. The string value is also
// the action's name under the [bindings] config table.
type Action string

const (
	// Global actions
	ActionQuit           Action = "quit"
	ActionHelp           Action = "help"
	ActionTogglePlaylist Action = "toggle_playlist"
	ActionToggleArtOnly  Action = "toggle_art_only"

	// Playback actions
	ActionPlayPause    Action = "play_pause"
	ActionNextTrack    Action = "next_track"
	ActionPrevTrack    Action = "prev_track"
	ActionVolumeUp     Action = "volume_up"
	ActionVolumeDown   Action = "volume_down"
	ActionToggleRandom Action = "toggle_random"
	ActionToggleRepeat Action = "toggle_repeat"

	// Playlist actions
	ActionSelectUp      Action = "select_up"
	ActionSelectDown    Action = "select_down"
	ActionPlaySelected  Action = "play_selected"
	ActionMoveTrackUp   Action = "move_track_up"
	ActionMoveTrackDown Action = "move_track_down"
	ActionDeleteTrack   Action = "delete_track"
)

// PlaylistOnly reports whether the action targets the playlist pane.
// These are dropped while the pane is hidden.
func (a Action) PlaylistOnly() bool {
	switch a {
	case ActionSelectUp, ActionSelectDown, ActionPlaySelected,
		ActionMoveTrackUp, ActionMoveTrackDown, ActionDeleteTrack:
		return true
	default:
		return false
	}
}

// AllowedWhenStopped reports whether the action still fires while the
// daemon is stopped. Everything else waits for playback to resume.
func (a Action) AllowedWhenStopped() bool {
	switch a {
	case ActionQuit, ActionHelp, ActionSelectUp, ActionSelectDown:
		return true
	default:
		return false
	}
}
