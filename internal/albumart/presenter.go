package albumart

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"  // album art decoders
	_ "image/jpeg" // album art decoders
	_ "image/png"  // album art decoders
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nfnt/resize"
)

// nextImageID is a global counter so every prepared image gets a fresh
// protocol-level ID.
var nextImageID uint32

func newImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// Presenter owns the single on-screen album image: it resizes and encodes
// art for the active back-end, hands the app the escape strings to embed
// in the view, and remembers what is already transmitted so each track is
// encoded once per size.
type Presenter struct {
	mu    sync.Mutex
	proto ImageProtocol // nil when the terminal cannot display images
	cache *Cache

	width  int // cells
	height int // cells

	currentKey string
	prepared   bool
	imageID    uint32
	pending    string
}

// NewPresenter creates a presenter for the given back-end. proto may be
// nil; the presenter then renders a text placeholder box instead.
func NewPresenter(proto ImageProtocol, cache *Cache) *Presenter {
	return &Presenter{proto: proto, cache: cache}
}

// Enabled reports whether an image back-end is available.
func (p *Presenter) Enabled() bool {
	return p.proto != nil
}

// SetSize sets the display dimensions in terminal cells. A size change
// invalidates the prepared image so the next Prepare re-encodes.
func (p *Presenter) SetSize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.width != width || p.height != height {
		p.width = width
		p.height = height
		p.prepared = false
	}
}

// NeedsPrepare reports whether Prepare would do work for this key.
func (p *Presenter) NeedsPrepare(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.proto != nil && !(p.prepared && p.currentKey == key)
}

// Prepare resizes and encodes art for the current display size. The
// one-time transmit escape becomes available from TakeTransmit. A decode
// failure leaves the previous image in place and is returned to the
// caller, which retries on the next art trigger.
func (p *Presenter) Prepare(key string, art []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.proto == nil {
		return nil
	}
	if p.prepared && p.currentKey == key {
		return nil
	}
	if p.width <= 0 || p.height <= 0 {
		return nil
	}

	pixelW, pixelH := p.proto.TargetPixelSize(p.width, p.height)

	pngData := p.cache.Get(key, pixelW, pixelH)
	if pngData == nil {
		img, _, err := image.Decode(bytes.NewReader(art))
		if err != nil {
			return err
		}
		resized := resize.Thumbnail(uint(pixelW), uint(pixelH), img, resize.Lanczos3)
		pngData, err = encodePNG(resized)
		if err != nil {
			return err
		}
		_ = p.cache.Put(key, pixelW, pixelH, pngData)
	}

	var deleteCmd string
	if p.imageID > 0 {
		deleteCmd = p.proto.Delete(p.imageID)
	}

	id := newImageID()
	transmit, err := p.proto.PrepareFromPNG(pngData, id)
	if err != nil {
		return err
	}

	p.currentKey = key
	p.prepared = true
	p.imageID = id
	p.pending = deleteCmd + transmit

	return nil
}

// TakeTransmit returns the pending one-time escape string and clears it.
// The app prepends it to the next rendered view.
func (p *Presenter) TakeTransmit() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	cmd := p.pending
	p.pending = ""
	return cmd
}

// Placement returns the escape sequence placing the image at (row, col),
// 1-based. Empty when no image is prepared.
func (p *Presenter) Placement(row, col int) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.proto == nil || p.imageID == 0 || !p.prepared {
		return ""
	}
	return p.proto.Place(p.imageID, row, col, p.width, p.height)
}

// Placeholder returns the text block occupying the image area in the
// layout: blank space under an image back-end, a bordered box without
// one.
func (p *Presenter) Placeholder() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.proto == nil {
		return TextPlaceholder(p.width, p.height)
	}
	return p.proto.Placeholder(p.width, p.height)
}

// HasImage reports whether an image is prepared for display.
func (p *Presenter) HasImage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.imageID > 0 && p.prepared
}

// Clear removes the current image and returns the escape sequence that
// erases it from the terminal.
func (p *Presenter) Clear() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var cmd string
	if p.proto != nil && p.imageID > 0 {
		cmd = p.proto.Delete(p.imageID)
	}

	p.currentKey = ""
	p.prepared = false
	p.imageID = 0
	p.pending = ""

	return cmd
}

// FinalHide writes the teardown sequence directly to w after the program
// loop has exited: delete every transmitted image and reset attributes. A
// wedged terminal would block the write forever, so it runs under a
// deadline.
func FinalHide(w io.Writer, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		_, err := io.WriteString(w, DeleteAll()+"\x1b[0m")
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return errors.New("terminal not responding to image teardown")
	}
}
