package lastfm

import "time"

// Last.fm scrobbling rules: a play counts once half the track, or four
// minutes, whichever comes first, has elapsed. Tracks shorter than thirty
// seconds never count.
const (
	MinScrobbleLength = 30 * time.Second
	ScrobbleCap       = 4 * time.Minute
)

// ShouldScrobble reports whether a track with the given play progress
// qualifies for submission.
func ShouldScrobble(elapsed, duration time.Duration) bool {
	if duration < MinScrobbleLength {
		return false
	}
	threshold := duration / 2
	if threshold > ScrobbleCap {
		threshold = ScrobbleCap
	}
	return elapsed >= threshold
}
