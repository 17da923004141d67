package mpd

import (
	"path"
	"strings"
	"time"
)

// State mirrors the playback state reported by the daemon.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// Track represents a single queue entry.
type Track struct {
	File     string // daemon-relative URI, also the track identity
	Title    string
	Artist   string
	Album    string
	Pos      int // position in the queue
	Duration time.Duration
}

// DisplayTitle returns the title, falling back to the file name without
// extension for untagged tracks.
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	base := path.Base(t.File)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Snapshot is a point-in-time capture of the daemon's playback state,
// taken once per poll.
type Snapshot struct {
	State           State
	Current         Track // zero File when no current song
	SongIndex       int   // queue position of Current, -1 when none
	Elapsed         time.Duration
	Duration        time.Duration
	Volume          int
	Repeat          bool
	Random          bool
	PlaylistVersion int // incremented by the daemon on every queue change
	PlaylistLength  int
}

// Stats holds daemon library statistics, shown in the help footer.
type Stats struct {
	Artists    int
	Albums     int
	Songs      int
	Uptime     time.Duration
	DBPlaytime time.Duration
	DBUpdated  time.Time
}
