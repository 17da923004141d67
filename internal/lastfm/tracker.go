package lastfm

import (
	"fmt"
	"time"

	"github.com/llehouerou/vinyl/internal/mpd"
)

// replaySlack is how far elapsed may move backwards before the tracker
// treats the same queue entry as started over (repeat-one, outside seek).
const replaySlack = 2 * time.Second

// Tracker decides when the playing track gets announced and scrobbled. It
// keys on the queue entry, so the same song appearing twice in the
// playlist scrobbles twice.
type Tracker struct {
	key            string
	startedAt      time.Time
	lastElapsed    time.Duration
	nowPlayingSent bool
	scrobbled      bool
}

// Observe advances the tracker with a fresh snapshot and reports what is
// due: a now-playing announcement when a track starts playing, a scrobble
// once the threshold passes. Each fires at most once per play.
func (t *Tracker) Observe(snap mpd.Snapshot, now time.Time) (nowPlaying, scrobble bool) {
	if snap.State == mpd.Stopped || snap.Current.File == "" {
		t.key = ""
		return false, false
	}

	key := fmt.Sprintf("%d:%s", snap.SongIndex, snap.Current.File)
	switch {
	case key != t.key:
		t.key = key
		t.startedAt = now
		t.nowPlayingSent = false
		t.scrobbled = false
	case snap.Elapsed+replaySlack < t.lastElapsed:
		// Same entry started over.
		t.startedAt = now
		t.nowPlayingSent = false
		t.scrobbled = false
	}
	t.lastElapsed = snap.Elapsed

	// Last.fm rejects artist-less submissions.
	if snap.Current.Artist == "" {
		return false, false
	}

	if snap.State == mpd.Playing && !t.nowPlayingSent {
		t.nowPlayingSent = true
		nowPlaying = true
	}
	if !t.scrobbled && ShouldScrobble(snap.Elapsed, snap.Duration) {
		t.scrobbled = true
		scrobble = true
	}
	return nowPlaying, scrobble
}

// Track builds the submission payload for the entry under observation.
func (t *Tracker) Track(snap mpd.Snapshot) ScrobbleTrack {
	return ScrobbleTrack{
		Artist:    snap.Current.Artist,
		Track:     snap.Current.DisplayTitle(),
		Album:     snap.Current.Album,
		Duration:  snap.Duration,
		Timestamp: t.startedAt,
	}
}
