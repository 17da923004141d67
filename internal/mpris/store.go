package mpris

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vinyl/internal/mpd"
)

// Store holds the latest playback snapshot for D-Bus property reads. The
// update loop writes it once per poll; D-Bus handlers read it from their
// own goroutines.
type Store struct {
	mu   sync.RWMutex
	snap mpd.Snapshot
}

// NewStore creates an empty snapshot store.
func NewStore() *Store {
	return &Store{}
}

// Update replaces the stored snapshot.
func (s *Store) Update(snap mpd.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Snapshot returns the stored snapshot.
func (s *Store) Snapshot() mpd.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Sender delivers messages into the update loop. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Command is a transport control relayed from D-Bus into the update loop.
type Command int

const (
	CmdPlayPause Command = iota
	CmdPlay
	CmdPause
	CmdStop
	CmdNext
	CmdPrevious
)

// CommandMsg wraps a transport control for delivery via Program.Send.
type CommandMsg struct {
	Command Command
}

// SetVolumeMsg asks the loop to set an absolute volume (0-100).
type SetVolumeMsg struct {
	Volume int
}

// SetRepeatMsg asks the loop to set the daemon's repeat flag.
type SetRepeatMsg struct {
	Repeat bool
}

// SetRandomMsg asks the loop to set the daemon's random flag.
type SetRandomMsg struct {
	Random bool
}
