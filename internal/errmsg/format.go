// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Daemon operations
	OpDaemonConnect Op = "connect to MPD"
	OpDaemonStatus  Op = "read daemon status"
	OpPlaylistFetch Op = "fetch playlist"

	// Playback commands
	OpPlayPause    Op = "toggle playback"
	OpNextTrack    Op = "skip to next track"
	OpPrevTrack    Op = "skip to previous track"
	OpPlayIndex    Op = "play selected track"
	OpSetVolume    Op = "change volume"
	OpToggleRandom Op = "toggle shuffle"
	OpToggleRepeat Op = "toggle repeat"
	OpQueueSwap    Op = "move playlist entry"
	OpQueueDelete  Op = "remove playlist entry"

	// Album art
	OpArtDecode Op = "decode album art"

	// Configuration
	OpConfigLoad     Op = "load configuration"
	OpConfigValidate Op = "validate configuration"

	// State persistence
	OpStateOpen Op = "open state database"

	// Last.fm
	OpScrobble   Op = "submit scrobble"
	OpLastfmAuth Op = "authenticate with Last.fm"

	// MPRIS
	OpMprisStart Op = "start MPRIS service"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
