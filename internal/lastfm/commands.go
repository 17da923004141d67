package lastfm

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vinyl/internal/state"
)

// Submitter is the slice of Client the async commands need.
type Submitter interface {
	UpdateNowPlaying(track ScrobbleTrack) error
	Scrobble(track ScrobbleTrack) error
}

// Message types for Last.fm operations.

// NowPlayingResultMsg contains the result of updating now playing.
type NowPlayingResultMsg struct {
	Err error
}

// ScrobbleResultMsg contains the result of a scrobble submission. Queued
// reports that a failed submission was parked for retry.
type ScrobbleResultMsg struct {
	Track  string
	Queued bool
	Err    error
}

// RetryPendingMsg triggers retry of pending scrobbles.
type RetryPendingMsg struct{}

// RetryResultMsg contains the result of retrying pending scrobbles.
type RetryResultMsg struct {
	Succeeded int
	Failed    int
	Err       error
}

// NowPlayingCmd sends a "now playing" notification to Last.fm.
func NowPlayingCmd(client Submitter, track ScrobbleTrack) tea.Cmd {
	return func() tea.Msg {
		err := client.UpdateNowPlaying(track)
		return NowPlayingResultMsg{Err: err}
	}
}

// ScrobbleCmd submits a track play to Last.fm. A failed submission is
// queued in the state store and replayed later.
func ScrobbleCmd(client Submitter, st state.Interface, track ScrobbleTrack) tea.Cmd {
	return func() tea.Msg {
		err := client.Scrobble(track)
		if err == nil {
			return ScrobbleResultMsg{Track: track.Track}
		}

		queueErr := st.AddPendingScrobble(state.PendingScrobble{
			Artist:       track.Artist,
			Track:        track.Track,
			Album:        track.Album,
			DurationSecs: int(track.Duration.Seconds()),
			Timestamp:    track.Timestamp,
		})
		return ScrobbleResultMsg{Track: track.Track, Queued: queueErr == nil, Err: err}
	}
}

// maxAttempts is how many times a pending scrobble is retried before it is
// left for the age-based cleanup.
const maxAttempts = 10

// RetryPendingCmd replays the queued scrobbles.
func RetryPendingCmd(client Submitter, st state.Interface) tea.Cmd {
	return func() tea.Msg {
		pending, err := st.GetPendingScrobbles()
		if err != nil {
			return RetryResultMsg{Err: err}
		}
		if len(pending) == 0 {
			return RetryResultMsg{}
		}

		var succeeded, failed int
		for i := range pending {
			p := &pending[i]
			if p.Attempts >= maxAttempts {
				continue
			}

			track := ScrobbleTrack{
				Artist:    p.Artist,
				Track:     p.Track,
				Album:     p.Album,
				Duration:  time.Duration(p.DurationSecs) * time.Second,
				Timestamp: p.Timestamp,
			}

			err := client.Scrobble(track)
			if err != nil {
				failed++
				_ = st.UpdatePendingScrobbleAttempt(p.ID, err.Error())
			} else {
				succeeded++
				_ = st.DeletePendingScrobble(p.ID)
			}
		}

		return RetryResultMsg{Succeeded: succeeded, Failed: failed}
	}
}

// retryInterval is how often the pending queue is replayed.
const retryInterval = 5 * time.Minute

// RetryTickCmd schedules the next pending-queue replay.
func RetryTickCmd() tea.Cmd {
	return tea.Tick(retryInterval, func(_ time.Time) tea.Msg {
		return RetryPendingMsg{}
	})
}
