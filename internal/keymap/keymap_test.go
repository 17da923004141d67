//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 4},
		{"playback context", "playback", 5},
		{"playlist context", "playlist", 5},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d",
					tt.context, len(result), tt.expectMinLength)
			}
			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestEveryBindingHasKeysAndDescription(t *testing.T) {
	for _, b := range Bindings {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
	}
}

func TestPlaylistOnly(t *testing.T) {
	playlistOnly := map[Action]bool{
		ActionSelectUp:      true,
		ActionSelectDown:    true,
		ActionPlaySelected:  true,
		ActionMoveTrackUp:   true,
		ActionMoveTrackDown: true,
		ActionDeleteTrack:   true,
	}

	for _, b := range Bindings {
		want := playlistOnly[b.Action]
		if got := b.Action.PlaylistOnly(); got != want {
			t.Errorf("%q.PlaylistOnly() = %v, want %v", b.Action, got, want)
		}
	}
}

func TestAllowedWhenStopped(t *testing.T) {
	allowed := map[Action]bool{
		ActionQuit:       true,
		ActionHelp:       true,
		ActionSelectUp:   true,
		ActionSelectDown: true,
	}

	for _, b := range Bindings {
		want := allowed[b.Action]
		if got := b.Action.AllowedWhenStopped(); got != want {
			t.Errorf("%q.AllowedWhenStopped() = %v, want %v", b.Action, got, want)
		}
	}
}

func TestPrintableKey(t *testing.T) {
	if got := PrintableKey(" "); got != "space" {
		t.Errorf("PrintableKey(' ') = %q, want 'space'", got)
	}
	if got := PrintableKey("ctrl+c"); got != "ctrl+c" {
		t.Errorf("PrintableKey('ctrl+c') = %q, want unchanged", got)
	}
}
