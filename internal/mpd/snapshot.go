package mpd

import (
	"strconv"
	"time"

	gompd "github.com/fhs/gompd/v2/mpd"
)

// Snapshot captures the daemon's current playback state in a single poll.
func (c *Client) Snapshot() (Snapshot, error) {
	status, err := c.conn.Status()
	if err != nil {
		return Snapshot{}, err
	}
	song, err := c.conn.CurrentSong()
	if err != nil {
		return Snapshot{}, err
	}
	return snapshotFromAttrs(status, song), nil
}

// Playlist fetches the full queue.
func (c *Client) Playlist() ([]Track, error) {
	infos, err := c.conn.PlaylistInfo(-1, -1)
	if err != nil {
		return nil, err
	}
	tracks := make([]Track, 0, len(infos))
	for _, attrs := range infos {
		tracks = append(tracks, trackFromAttrs(attrs))
	}
	return tracks, nil
}

// Stats fetches daemon library statistics.
func (c *Client) Stats() (Stats, error) {
	attrs, err := c.conn.Stats()
	if err != nil {
		return Stats{}, err
	}
	return statsFromAttrs(attrs), nil
}

func snapshotFromAttrs(status, song gompd.Attrs) Snapshot {
	snap := Snapshot{
		State:           parseState(status["state"]),
		Current:         trackFromAttrs(song),
		SongIndex:       atoiAttr(status, "song", -1),
		Elapsed:         secondsAttr(status, "elapsed"),
		Duration:        secondsAttr(status, "duration"),
		Volume:          atoiAttr(status, "volume", 0),
		Repeat:          boolAttr(status, "repeat"),
		Random:          boolAttr(status, "random"),
		PlaylistVersion: atoiAttr(status, "playlist", 0),
		PlaylistLength:  atoiAttr(status, "playlistlength", 0),
	}
	if snap.Current.File == "" {
		snap.SongIndex = -1
	}
	return snap
}

func trackFromAttrs(attrs gompd.Attrs) Track {
	return Track{
		File:     attrs["file"],
		Title:    attrs["Title"],
		Artist:   attrs["Artist"],
		Album:    attrs["Album"],
		Pos:      atoiAttr(attrs, "Pos", 0),
		Duration: secondsAttr(attrs, "duration"),
	}
}

func statsFromAttrs(attrs gompd.Attrs) Stats {
	return Stats{
		Artists:    atoiAttr(attrs, "artists", 0),
		Albums:     atoiAttr(attrs, "albums", 0),
		Songs:      atoiAttr(attrs, "songs", 0),
		Uptime:     time.Duration(atoiAttr(attrs, "uptime", 0)) * time.Second,
		DBPlaytime: time.Duration(atoiAttr(attrs, "db_playtime", 0)) * time.Second,
		DBUpdated:  time.Unix(int64(atoiAttr(attrs, "db_update", 0)), 0),
	}
}

func parseState(s string) State {
	switch s {
	case "play":
		return Playing
	case "pause":
		return Paused
	default:
		return Stopped
	}
}

func atoiAttr(attrs gompd.Attrs, key string, def int) int {
	v, ok := attrs[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// secondsAttr parses a fractional seconds value like "123.456".
func secondsAttr(attrs gompd.Attrs, key string) time.Duration {
	v, ok := attrs[key]
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return time.Duration(f * float64(time.Second))
}

func boolAttr(attrs gompd.Attrs, key string) bool {
	return attrs[key] == "1"
}
