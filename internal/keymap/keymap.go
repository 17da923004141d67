package keymap

// Binding describes a single key binding for resolution and documentation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist"
}

// Bindings contains the default key bindings in help display order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionTogglePlaylist, []string{"v"}, "Toggle playlist pane", "global"},
	{ActionToggleArtOnly, []string{"a"}, "Toggle art-only mode", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n", "right"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"b", "left"}, "Previous track", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionToggleRandom, []string{"z"}, "Toggle random", "playback"},
	{ActionToggleRepeat, []string{"r"}, "Toggle repeat", "playback"},

	// Playlist
	{ActionSelectUp, []string{"k", "up"}, "Move selection up", "playlist"},
	{ActionSelectDown, []string{"j", "down"}, "Move selection down", "playlist"},
	{ActionPlaySelected, []string{"enter"}, "Play selected track", "playlist"},
	{ActionMoveTrackUp, []string{"K", "shift+up"}, "Move track up", "playlist"},
	{ActionMoveTrackDown, []string{"J", "shift+down"}, "Move track down", "playlist"},
	{ActionDeleteTrack, []string{"d", "delete"}, "Remove track", "playlist"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// PrintableKey returns key as shown in the help overlay.
func PrintableKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
