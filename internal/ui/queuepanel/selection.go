package queuepanel

// SyncToPlaying moves the selection to the currently playing track.
// No-op when nothing is playing.
func (m *Model) SyncToPlaying() {
	if m.playing >= 0 && m.playing < len(m.tracks) {
		m.selected = m.playing
	}
}

// MoveSelection moves the selection by delta positions, wrapping around
// both ends of the queue. No-op on an empty queue.
func (m *Model) MoveSelection(delta int) {
	n := len(m.tracks)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}
