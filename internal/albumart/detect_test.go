package albumart

import (
	"strings"
	"testing"
)

// clearImageEnv blanks every environment variable the detection logic
// reads so tests control exactly what the "terminal" looks like.
func clearImageEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvProtocolOverride,
		"CONTOUR_PROFILE",
		"KITTY_WINDOW_ID",
		"TERM",
		"TERM_PROGRAM",
		"GHOSTTY_RESOURCES_DIR",
		"KONSOLE_VERSION",
	} {
		t.Setenv(key, "")
	}
}

func TestDetect_Override(t *testing.T) {
	tests := []struct {
		override string
		want     string
	}{
		{"kitty", "*albumart.KittyProtocol"},
		{"sixel", "*albumart.SixelProtocol"},
		{"none", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.override, func(t *testing.T) {
			clearImageEnv(t)
			// Environment that would otherwise detect kitty.
			t.Setenv("KITTY_WINDOW_ID", "1")
			t.Setenv(EnvProtocolOverride, tt.override)

			proto := Detect(8, 16)
			got := "none"
			if proto != nil {
				got = protoTypeName(proto)
			}
			if got != tt.want {
				t.Errorf("Detect() with override %q = %s, want %s", tt.override, got, tt.want)
			}
		})
	}
}

func TestDetect_KittyTerminal(t *testing.T) {
	clearImageEnv(t)
	t.Setenv("KITTY_WINDOW_ID", "1")

	if _, ok := Detect(8, 16).(*KittyProtocol); !ok {
		t.Error("KITTY_WINDOW_ID should select the Kitty protocol")
	}
}

func TestDetect_SixelTerminal(t *testing.T) {
	clearImageEnv(t)
	t.Setenv("TERM", "foot")

	if _, ok := Detect(8, 16).(*SixelProtocol); !ok {
		t.Error("TERM=foot should select the Sixel protocol")
	}
}

func TestDetect_UnknownTerminal(t *testing.T) {
	clearImageEnv(t)
	t.Setenv("TERM", "dumb")

	if proto := Detect(8, 16); proto != nil {
		t.Errorf("unknown terminal should detect no protocol, got %s", protoTypeName(proto))
	}
}

func TestIsKittySupported(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"kitty window id", map[string]string{"KITTY_WINDOW_ID": "3"}, true},
		{"xterm-kitty", map[string]string{"TERM": "xterm-kitty"}, true},
		{"wezterm", map[string]string{"TERM_PROGRAM": "WezTerm"}, true},
		{"ghostty", map[string]string{"GHOSTTY_RESOURCES_DIR": "/usr/share/ghostty"}, true},
		{"recent konsole", map[string]string{"KONSOLE_VERSION": "230401"}, true},
		{"old konsole", map[string]string{"KONSOLE_VERSION": "210800"}, false},
		{"contour blocks leaked vars", map[string]string{
			"CONTOUR_PROFILE":       "main",
			"GHOSTTY_RESOURCES_DIR": "/usr/share/ghostty",
		}, false},
		{"plain xterm", map[string]string{"TERM": "xterm"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearImageEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := IsKittySupported(); got != tt.want {
				t.Errorf("IsKittySupported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSixelSupported(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"foot", map[string]string{"TERM": "foot"}, true},
		{"vscode", map[string]string{"TERM_PROGRAM": "vscode"}, true},
		{"iterm2", map[string]string{"TERM_PROGRAM": "iTerm.app"}, true},
		{"contour", map[string]string{"CONTOUR_PROFILE": "main"}, true},
		{"xterm", map[string]string{"TERM": "xterm"}, true},
		{"xterm 256color", map[string]string{"TERM": "xterm-256color"}, true},
		{"dumb", map[string]string{"TERM": "dumb"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearImageEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := IsSixelSupported(); got != tt.want {
				t.Errorf("IsSixelSupported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func protoTypeName(p ImageProtocol) string {
	switch p.(type) {
	case *KittyProtocol:
		return "*albumart.KittyProtocol"
	case *SixelProtocol:
		return "*albumart.SixelProtocol"
	default:
		return "unknown"
	}
}

func TestTextPlaceholder(t *testing.T) {
	box := TextPlaceholder(10, 5)
	lines := strings.Split(box, "\n")

	if len(lines) != 5 {
		t.Fatalf("TextPlaceholder(10, 5) has %d lines, want 5", len(lines))
	}
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasSuffix(lines[0], "┐") {
		t.Errorf("top border = %q", lines[0])
	}
	if !strings.HasPrefix(lines[4], "└") || !strings.HasSuffix(lines[4], "┘") {
		t.Errorf("bottom border = %q", lines[4])
	}
	if !strings.Contains(box, "♪") {
		t.Error("placeholder should contain a music note")
	}
}

func TestTextPlaceholder_TooSmall(t *testing.T) {
	// Degenerate regions fall back to blank space.
	if got := TextPlaceholder(3, 1); got != strings.Repeat(" ", 3) {
		t.Errorf("TextPlaceholder(3, 1) = %q, want blank line", got)
	}
}
