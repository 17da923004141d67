// internal/app/classify.go

package app

import "github.com/llehouerou/vinyl/internal/mpd"

// change describes what differs between two consecutive daemon
// snapshots.
type change struct {
	track    bool // a different track is current
	state    bool // play/pause/stop flipped
	playlist bool // the queue contents changed
	display  bool // anything visible changed
}

// classify compares the previous poll with the current one. The first
// poll reports everything changed so startup runs the full refresh path.
//
// Track identity is the queue position plus the tags: pausing does not
// re-trigger art, but a stream retitling itself in place does.
func classify(prev, cur mpd.Snapshot, havePrev bool) change {
	if !havePrev {
		return change{
			track:    cur.Current.File != "",
			state:    true,
			playlist: true,
			display:  true,
		}
	}

	c := change{
		track: prev.SongIndex != cur.SongIndex ||
			prev.Current.File != cur.Current.File ||
			prev.Current.Title != cur.Current.Title ||
			prev.Current.Artist != cur.Current.Artist ||
			prev.Current.Album != cur.Current.Album,
		state: prev.State != cur.State,
		playlist: prev.PlaylistVersion != cur.PlaylistVersion ||
			prev.PlaylistLength != cur.PlaylistLength,
	}

	// Elapsed compares at second granularity: the progress bar cannot
	// show anything finer, and per-poll deltas would redraw every tick.
	c.display = c.track || c.state || c.playlist ||
		prev.Volume != cur.Volume ||
		prev.Repeat != cur.Repeat ||
		prev.Random != cur.Random ||
		prev.Duration != cur.Duration ||
		int(prev.Elapsed.Seconds()) != int(cur.Elapsed.Seconds())

	return c
}
