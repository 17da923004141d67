// internal/mpd/mock.go

package mpd

import "errors"

// Mock is a test double for Client.
type Mock struct {
	snap     Snapshot
	playlist []Track
	stats    Stats
	picture  []byte

	snapshotErr error
	playlistErr error
	commandErr  error

	closed bool

	// Recorded calls, in order.
	Commands []string
	Played   []int
	Swapped  [][2]int
	Deleted  []int
	Volumes  []int
	Randoms  []bool
	Repeats  []bool
}

// NewMock creates a new mock daemon client for testing.
func NewMock() *Mock {
	return &Mock{snap: Snapshot{State: Stopped, SongIndex: -1}}
}

func (m *Mock) Snapshot() (Snapshot, error) {
	if m.snapshotErr != nil {
		return Snapshot{}, m.snapshotErr
	}
	return m.snap, nil
}

func (m *Mock) Playlist() ([]Track, error) {
	if m.playlistErr != nil {
		return nil, m.playlistErr
	}
	return append([]Track(nil), m.playlist...), nil
}

func (m *Mock) Stats() (Stats, error) {
	return m.stats, nil
}

func (m *Mock) record(name string) error {
	m.Commands = append(m.Commands, name)
	return m.commandErr
}

func (m *Mock) Toggle(State) error { return m.record("toggle") }
func (m *Mock) Play() error        { return m.record("play") }
func (m *Mock) Stop() error        { return m.record("stop") }
func (m *Mock) Next() error        { return m.record("next") }
func (m *Mock) Previous() error    { return m.record("previous") }

func (m *Mock) SetVolume(volume int) error {
	m.Volumes = append(m.Volumes, volume)
	return m.record("setvolume")
}

func (m *Mock) SetRandom(on bool) error {
	m.Randoms = append(m.Randoms, on)
	return m.record("random")
}

func (m *Mock) SetRepeat(on bool) error {
	m.Repeats = append(m.Repeats, on)
	return m.record("repeat")
}

func (m *Mock) PlayIndex(i int) error {
	m.Played = append(m.Played, i)
	return m.record("playindex")
}

func (m *Mock) Swap(i, j int) error {
	m.Swapped = append(m.Swapped, [2]int{i, j})
	return m.record("swap")
}

func (m *Mock) Delete(i int) error {
	m.Deleted = append(m.Deleted, i)
	return m.record("delete")
}

func (m *Mock) ReadPicture(uri string) ([]byte, error) {
	if m.picture == nil {
		return nil, errors.New("no embedded picture")
	}
	return m.picture, nil
}

func (m *Mock) AlbumArt(uri string) ([]byte, error) {
	if m.picture == nil {
		return nil, errors.New("no album art")
	}
	return m.picture, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSnapshot(snap Snapshot) { m.snap = snap }

func (m *Mock) SetPlaylist(tracks []Track) {
	m.playlist = tracks
	m.snap.PlaylistLength = len(tracks)
	m.snap.PlaylistVersion++
}

func (m *Mock) SetStats(stats Stats) { m.stats = stats }

func (m *Mock) SetPicture(data []byte) { m.picture = data }

func (m *Mock) FailSnapshot(err error) { m.snapshotErr = err }

func (m *Mock) FailPlaylist(err error) { m.playlistErr = err }

func (m *Mock) FailCommands(err error) { m.commandErr = err }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
