// Package fetch resolves album art for a playlist entry through a
// fallback chain: embedded picture from the daemon, directory cover from
// the daemon, embedded tag read from the local file, and finally a
// generated placeholder cover. Fetch therefore always produces bytes.
package fetch

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
)

// Source is the daemon side of the chain.
type Source interface {
	ReadPicture(uri string) ([]byte, error)
	AlbumArt(uri string) ([]byte, error)
}

// Fetcher resolves album art bytes for track URIs.
type Fetcher struct {
	source   Source
	musicDir string
}

// New creates a fetcher. musicDir may be empty, which disables the
// local-file tier.
func New(source Source, musicDir string) *Fetcher {
	return &Fetcher{source: source, musicDir: musicDir}
}

// Fetch returns cover bytes for uri and whether they were generated
// rather than found.
func (f *Fetcher) Fetch(uri string) (data []byte, generated bool) {
	if data, err := f.source.ReadPicture(uri); err == nil && len(data) > 0 {
		return data, false
	}
	if data, err := f.source.AlbumArt(uri); err == nil && len(data) > 0 {
		return data, false
	}
	if data := f.localPicture(uri); len(data) > 0 {
		return data, false
	}
	return PlaceholderPNG(PlaceholderSide, uri), true
}

// localPicture reads the embedded picture from the file under the music
// directory. Any failure just means this tier has nothing.
func (f *Fetcher) localPicture(uri string) []byte {
	if f.musicDir == "" || uri == "" {
		return nil
	}

	fh, err := os.Open(filepath.Join(f.musicDir, uri))
	if err != nil {
		return nil
	}
	defer fh.Close()

	m, err := tag.ReadFrom(fh)
	if err != nil {
		return nil
	}
	if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
		return pic.Data
	}
	return nil
}
