//go:build linux

package mpris

import (
	"os"
	"path/filepath"
)

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// CoverPath resolves a daemon-relative track URI against the configured
// music directory and looks for album art next to the file. Returns the
// absolute path to the art file, or empty string when the music directory
// is unknown or nothing matches.
func CoverPath(musicDir, trackURI string) string {
	if musicDir == "" || trackURI == "" {
		return ""
	}
	dir := filepath.Dir(filepath.Join(musicDir, trackURI))
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
