package lastfm

import (
	"errors"
	"testing"
	"time"

	"github.com/llehouerou/vinyl/internal/state"
)

type fakeSubmitter struct {
	nowPlaying []ScrobbleTrack
	scrobbled  []ScrobbleTrack
	err        error
}

func (f *fakeSubmitter) UpdateNowPlaying(track ScrobbleTrack) error {
	if f.err != nil {
		return f.err
	}
	f.nowPlaying = append(f.nowPlaying, track)
	return nil
}

func (f *fakeSubmitter) Scrobble(track ScrobbleTrack) error {
	if f.err != nil {
		return f.err
	}
	f.scrobbled = append(f.scrobbled, track)
	return nil
}

func testTrack() ScrobbleTrack {
	return ScrobbleTrack{
		Artist:    "Artist",
		Track:     "Track",
		Album:     "Album",
		Duration:  3 * time.Minute,
		Timestamp: time.Now().Add(-2 * time.Minute),
	}
}

func TestNowPlayingCmd(t *testing.T) {
	f := &fakeSubmitter{}

	msg := NowPlayingCmd(f, testTrack())()
	result, ok := msg.(NowPlayingResultMsg)
	if !ok {
		t.Fatalf("expected NowPlayingResultMsg, got %T", msg)
	}
	if result.Err != nil {
		t.Errorf("unexpected error: %v", result.Err)
	}
	if len(f.nowPlaying) != 1 {
		t.Fatalf("expected 1 now-playing call, got %d", len(f.nowPlaying))
	}
	if f.nowPlaying[0].Track != "Track" {
		t.Errorf("Track = %q, want %q", f.nowPlaying[0].Track, "Track")
	}
}

func TestScrobbleCmd_Success(t *testing.T) {
	f := &fakeSubmitter{}
	st := state.NewMock()

	msg := ScrobbleCmd(f, st, testTrack())()
	result, ok := msg.(ScrobbleResultMsg)
	if !ok {
		t.Fatalf("expected ScrobbleResultMsg, got %T", msg)
	}
	if result.Err != nil {
		t.Errorf("unexpected error: %v", result.Err)
	}
	if result.Queued {
		t.Error("successful scrobble should not be queued")
	}

	pending, _ := st.GetPendingScrobbles()
	if len(pending) != 0 {
		t.Errorf("expected empty retry queue, got %d entries", len(pending))
	}
}

func TestScrobbleCmd_FailureQueuesForRetry(t *testing.T) {
	f := &fakeSubmitter{err: errors.New("network down")}
	st := state.NewMock()

	track := testTrack()
	msg := ScrobbleCmd(f, st, track)()
	result := msg.(ScrobbleResultMsg)
	if result.Err == nil {
		t.Error("expected submission error")
	}
	if !result.Queued {
		t.Error("failed scrobble should be queued for retry")
	}

	pending, _ := st.GetPendingScrobbles()
	if len(pending) != 1 {
		t.Fatalf("expected 1 queued scrobble, got %d", len(pending))
	}
	p := pending[0]
	if p.Artist != track.Artist || p.Track != track.Track || p.Album != track.Album {
		t.Errorf("queued scrobble = %q/%q/%q, want track metadata preserved", p.Artist, p.Track, p.Album)
	}
	if p.DurationSecs != 180 {
		t.Errorf("DurationSecs = %d, want 180", p.DurationSecs)
	}
	if !p.Timestamp.Equal(track.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", p.Timestamp, track.Timestamp)
	}
}

func TestRetryPendingCmd_EmptyQueue(t *testing.T) {
	f := &fakeSubmitter{}
	st := state.NewMock()

	msg := RetryPendingCmd(f, st)()
	result := msg.(RetryResultMsg)
	if result.Succeeded != 0 || result.Failed != 0 || result.Err != nil {
		t.Errorf("expected empty result, got %+v", result)
	}
	if len(f.scrobbled) != 0 {
		t.Error("nothing should be submitted for an empty queue")
	}
}

func TestRetryPendingCmd_DrainsQueue(t *testing.T) {
	f := &fakeSubmitter{}
	st := state.NewMock()
	_ = st.AddPendingScrobble(state.PendingScrobble{Artist: "A1", Track: "T1", Timestamp: time.Now()})
	_ = st.AddPendingScrobble(state.PendingScrobble{Artist: "A2", Track: "T2", Timestamp: time.Now()})

	msg := RetryPendingCmd(f, st)()
	result := msg.(RetryResultMsg)
	if result.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", result.Succeeded)
	}
	if result.Failed != 0 {
		t.Errorf("Failed = %d, want 0", result.Failed)
	}

	pending, _ := st.GetPendingScrobbles()
	if len(pending) != 0 {
		t.Errorf("expected drained queue, got %d entries", len(pending))
	}
	if len(f.scrobbled) != 2 {
		t.Errorf("expected 2 submissions, got %d", len(f.scrobbled))
	}
}

func TestRetryPendingCmd_RecordsFailedAttempts(t *testing.T) {
	f := &fakeSubmitter{err: errors.New("still down")}
	st := state.NewMock()
	_ = st.AddPendingScrobble(state.PendingScrobble{Artist: "A", Track: "T", Timestamp: time.Now()})

	msg := RetryPendingCmd(f, st)()
	result := msg.(RetryResultMsg)
	if result.Failed != 1 {
		t.Errorf("Failed = %d, want 1", result.Failed)
	}

	pending, _ := st.GetPendingScrobbles()
	if len(pending) != 1 {
		t.Fatalf("expected entry kept in queue, got %d", len(pending))
	}
	if pending[0].Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", pending[0].Attempts)
	}
	if pending[0].LastError == "" {
		t.Error("expected last error recorded")
	}
}

func TestRetryPendingCmd_SkipsExhaustedEntries(t *testing.T) {
	f := &fakeSubmitter{}
	st := state.NewMock()
	_ = st.AddPendingScrobble(state.PendingScrobble{Artist: "A", Track: "T", Timestamp: time.Now(), Attempts: maxAttempts})

	msg := RetryPendingCmd(f, st)()
	result := msg.(RetryResultMsg)
	if result.Succeeded != 0 || result.Failed != 0 {
		t.Errorf("exhausted entry should be skipped, got %+v", result)
	}
	if len(f.scrobbled) != 0 {
		t.Error("exhausted entry should not be submitted")
	}
}
