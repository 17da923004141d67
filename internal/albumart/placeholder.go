package albumart

import "strings"

// TextPlaceholder returns a bordered box with a music note, shown in the
// art region when no image protocol is available.
func TextPlaceholder(cols, rows int) string {
	if cols < 4 || rows < 2 {
		return BlankPlaceholder(cols, rows)
	}

	lines := make([]string, 0, rows)
	lines = append(lines, "┌"+strings.Repeat("─", cols-2)+"┐")

	for i := 1; i < rows-1; i++ {
		if i == rows/2 && cols >= 5 {
			padding := (cols - 3) / 2
			lines = append(lines, "│"+strings.Repeat(" ", padding)+"♪"+strings.Repeat(" ", cols-3-padding)+"│")
		} else {
			lines = append(lines, "│"+strings.Repeat(" ", cols-2)+"│")
		}
	}

	lines = append(lines, "└"+strings.Repeat("─", cols-2)+"┘")

	return strings.Join(lines, "\n")
}
