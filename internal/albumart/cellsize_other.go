//go:build !unix

package albumart

// getCellSize returns default terminal cell dimensions on platforms
// without TIOCGWINSZ.
func getCellSize() (cellW, cellH int) {
	return 8, 16
}
