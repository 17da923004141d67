package queuepanel

// VisibleStart returns the index of the first visible row for a list of
// length entries shown in a window of height rows, keeping the selection
// centered once it passes the middle of the window.
func VisibleStart(length, selected, height int) int {
	if length <= 0 || height <= 0 {
		return 0
	}

	pos := selected % length
	if pos < 0 {
		pos += length
	}

	start := 0
	if pos > height/2 && length > height {
		start = pos - height/2
	}

	// Never scroll past the last full window.
	if maxStart := length - height; maxStart >= 0 && start > maxStart {
		start = maxStart
	}

	return start
}
