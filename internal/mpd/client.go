package mpd

import (
	"fmt"
	"strings"

	gompd "github.com/fhs/gompd/v2/mpd"
)

// DefaultAddress is used when no address is configured.
const DefaultAddress = "127.0.0.1:6600"

// Client wraps a daemon connection with typed commands and parsing.
// It is not safe for concurrent use; the render loop owns it.
type Client struct {
	conn *gompd.Client
}

// Dial connects to the daemon at address, authenticating when password is
// non-empty. Addresses starting with "/" are treated as unix sockets.
func Dial(address, password string) (*Client, error) {
	if address == "" {
		address = DefaultAddress
	}
	network := "tcp"
	if strings.HasPrefix(address, "/") {
		network = "unix"
	}

	var (
		conn *gompd.Client
		err  error
	)
	if password != "" {
		conn, err = gompd.DialAuthenticated(network, address, password)
	} else {
		conn, err = gompd.Dial(network, address)
	}
	if err != nil {
		return nil, err
	}

	return &Client{conn: conn}, nil
}

// Close terminates the daemon session.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Toggle flips between play and pause. No-op when stopped.
func (c *Client) Toggle(s State) error {
	switch s {
	case Playing:
		return c.conn.Pause(true)
	case Paused:
		return c.conn.Pause(false)
	default:
		return nil
	}
}

// Play starts or resumes playback of the current queue entry.
func (c *Client) Play() error {
	return c.conn.Play(-1)
}

// Stop halts playback.
func (c *Client) Stop() error {
	return c.conn.Stop()
}

// Next skips to the next queue entry.
func (c *Client) Next() error {
	return c.conn.Next()
}

// Previous skips to the previous queue entry.
func (c *Client) Previous() error {
	return c.conn.Previous()
}

// SetVolume sets the daemon volume, clamped to 0-100.
func (c *Client) SetVolume(volume int) error {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	return c.conn.SetVolume(volume)
}

// SetRandom sets the daemon's random mode.
func (c *Client) SetRandom(on bool) error {
	return c.conn.Random(on)
}

// SetRepeat sets the daemon's repeat mode.
func (c *Client) SetRepeat(on bool) error {
	return c.conn.Repeat(on)
}

// PlayIndex starts playback of the queue entry at index i. The queue length
// is re-read first so a stale view cannot start the wrong entry.
func (c *Client) PlayIndex(i int) error {
	n, err := c.playlistLength()
	if err != nil {
		return err
	}
	if i < 0 || i >= n {
		return fmt.Errorf("queue index %d out of range (length %d)", i, n)
	}
	return c.conn.Play(i)
}

// Swap exchanges the queue entries at i and j, re-reading the queue length
// first to reject indices from a stale view.
func (c *Client) Swap(i, j int) error {
	n, err := c.playlistLength()
	if err != nil {
		return err
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("queue swap %d<->%d out of range (length %d)", i, j, n)
	}
	return c.conn.Command("swap %d %d", i, j).OK()
}

// Delete removes the queue entry at index i, re-reading the queue length
// first to reject indices from a stale view.
func (c *Client) Delete(i int) error {
	n, err := c.playlistLength()
	if err != nil {
		return err
	}
	if i < 0 || i >= n {
		return fmt.Errorf("queue index %d out of range (length %d)", i, n)
	}
	return c.conn.Delete(i, -1)
}

// ReadPicture fetches the picture embedded in the track's tags.
func (c *Client) ReadPicture(uri string) ([]byte, error) {
	return c.conn.ReadPicture(uri)
}

// AlbumArt fetches the cover file stored next to the track.
func (c *Client) AlbumArt(uri string) ([]byte, error) {
	return c.conn.AlbumArt(uri)
}

func (c *Client) playlistLength() (int, error) {
	status, err := c.conn.Status()
	if err != nil {
		return 0, err
	}
	return atoiAttr(status, "playlistlength", 0), nil
}
