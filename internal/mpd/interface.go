// internal/mpd/interface.go

package mpd

// Interface defines the daemon client contract for dependency injection and testing.
type Interface interface {
	Snapshot() (Snapshot, error)
	Playlist() ([]Track, error)
	Stats() (Stats, error)
	Toggle(s State) error
	Play() error
	Stop() error
	Next() error
	Previous() error
	SetVolume(volume int) error
	SetRandom(on bool) error
	SetRepeat(on bool) error
	PlayIndex(i int) error
	Swap(i, j int) error
	Delete(i int) error
	ReadPicture(uri string) ([]byte, error)
	AlbumArt(uri string) ([]byte, error)
	Close() error
}

// Verify Client implements Interface at compile time.
var _ Interface = (*Client)(nil)
