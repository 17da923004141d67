package albumart

import (
	"os"
	"strings"
)

// EnvProtocolOverride forces a specific back-end regardless of detection.
const EnvProtocolOverride = "VINYL_IMAGE_PROTOCOL"

// Detect returns the best available ImageProtocol for the current
// terminal, or nil if images cannot be displayed. cellW and cellH are the
// cell pixel dimensions used for resize targets.
//
// The VINYL_IMAGE_PROTOCOL environment variable overrides detection:
//   - "kitty": force Kitty protocol
//   - "sixel": force Sixel protocol
//   - "none": disable image display
func Detect(cellW, cellH int) ImageProtocol {
	switch os.Getenv(EnvProtocolOverride) {
	case "kitty":
		return NewKittyProtocol(cellW, cellH)
	case "sixel":
		return NewSixelProtocol(cellW, cellH)
	case "none":
		return nil
	}

	if IsKittySupported() {
		return NewKittyProtocol(cellW, cellH)
	}
	if IsSixelSupported() {
		return NewSixelProtocol(cellW, cellH)
	}
	return nil
}

// IsKittySupported checks if the terminal supports the Kitty graphics
// protocol.
func IsKittySupported() bool {
	// Contour sets CONTOUR_PROFILE but doesn't support Kitty graphics.
	// Parent terminal env vars (e.g. GHOSTTY_RESOURCES_DIR) can leak into
	// Contour when launched from a Kitty-capable terminal, so check first.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "",
		os.Getenv("TERM") == "xterm-kitty",
		os.Getenv("TERM_PROGRAM") == "WezTerm",
		os.Getenv("GHOSTTY_RESOURCES_DIR") != "":
		return true
	}

	// Konsole supports Kitty graphics from 22.04; KONSOLE_VERSION is
	// formatted like "220401".
	if v := os.Getenv("KONSOLE_VERSION"); len(v) >= 4 && v[:4] >= "2204" {
		return true
	}

	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}

	term := os.Getenv("TERM")
	if term == "foot" || term == "foot-extra" {
		return true
	}

	// Plain xterm is a reasonable hint: sixel-capable builds are common,
	// and Kitty detection has already claimed the kitty variants.
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}

// CellSize reports the terminal cell pixel size. Layout geometry shares
// it with the image back-ends when no font size is configured.
func CellSize() (cellW, cellH int) {
	return getCellSize()
}
