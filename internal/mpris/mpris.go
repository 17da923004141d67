//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/vinyl/internal/mpd"
)

// Adapter exposes the player on the session bus so desktop media keys and
// applets can drive it. Property reads come from the snapshot store;
// controls are relayed into the update loop and never touch the daemon
// connection directly.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. musicDir, when set, lets
// Metadata point desktop widgets at local cover files.
func New(store *Store, sender Sender, musicDir string) (*Adapter, error) {
	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{store: store, sender: sender, musicDir: musicDir}

	a := &Adapter{
		server: server.NewServer("vinyl", rootAdapter, playerAdapter),
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - the terminal owns the lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil // Track list interface not implemented
}

func (r *rootAdapter) Identity() (string, error) {
	return "Vinyl", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
type playerAdapter struct {
	store    *Store
	sender   Sender
	musicDir string
}

func (p *playerAdapter) Next() error {
	p.sender.Send(CommandMsg{Command: CmdNext})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.sender.Send(CommandMsg{Command: CmdPrevious})
	return nil
}

func (p *playerAdapter) Pause() error {
	p.sender.Send(CommandMsg{Command: CmdPause})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.sender.Send(CommandMsg{Command: CmdPlayPause})
	return nil
}

func (p *playerAdapter) Stop() error {
	p.sender.Send(CommandMsg{Command: CmdStop})
	return nil
}

func (p *playerAdapter) Play() error {
	p.sender.Send(CommandMsg{Command: CmdPlay})
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.store.Snapshot().State {
	case mpd.Playing:
		return types.PlaybackStatusPlaying, nil
	case mpd.Paused:
		return types.PlaybackStatusPaused, nil
	case mpd.Stopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.store.Snapshot()
	track := snap.Current
	if track.File == "" {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.File)),
		Length:  types.Microseconds(snap.Duration.Microseconds()),
		Title:   track.DisplayTitle(),
		Artist:  []string{track.Artist},
		Album:   track.Album,
	}

	if artPath := CoverPath(p.musicDir, track.File); artPath != "" {
		meta.ArtUrl = "file://" + artPath
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.store.Snapshot().Volume) / 100.0, nil
}

func (p *playerAdapter) SetVolume(volume float64) error {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.sender.Send(SetVolumeMsg{Volume: int(volume * 100)})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.store.Snapshot().Elapsed.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.store.Snapshot().PlaylistLength > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.store.Snapshot().PlaylistLength > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.store.Snapshot().PlaylistLength > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus. The
// daemon has a single playlist-level repeat flag.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.store.Snapshot().Repeat {
		return types.LoopStatusPlaylist, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	p.sender.Send(SetRepeatMsg{Repeat: status != types.LoopStatusNone})
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.store.Snapshot().Random, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.sender.Send(SetRandomMsg{Random: shuffle})
	return nil
}

func formatTrackID(uri string) string {
	h := fnv.New64a()
	h.Write([]byte(uri))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
