package albumart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-sixel"
)

// placeCounter is incremented on every Place call to ensure the output
// string is always unique. This prevents Bubble Tea's diff renderer from
// skipping the sixel data when only surrounding text changed (e.g. a
// progress bar tick), which would leave the image partially erased.
var placeCounter uint64

// SixelProtocol implements ImageProtocol using the Sixel graphics
// protocol. Sixel has no terminal-side image memory, so every placement
// re-emits the encoded data.
type SixelProtocol struct {
	mu     sync.RWMutex
	images map[uint32]string // sixel-encoded data by image ID
	cellW  int
	cellH  int
}

// NewSixelProtocol creates a Sixel back-end for the given cell pixel
// size. Zero dimensions fall back to the terminal-reported size.
func NewSixelProtocol(cellW, cellH int) *SixelProtocol {
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = getCellSize()
	}
	return &SixelProtocol{
		images: make(map[uint32]string),
		cellW:  cellW,
		cellH:  cellH,
	}
}

func (s *SixelProtocol) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Dither = true

	if err := enc.Encode(img); err != nil {
		return "", fmt.Errorf("encode sixel: %w", err)
	}

	s.mu.Lock()
	s.images[id] = buf.String()
	s.mu.Unlock()

	return "", nil
}

func (s *SixelProtocol) PrepareFromPNG(pngData []byte, id uint32) (string, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return "", fmt.Errorf("decode png: %w", err)
	}
	return s.Prepare(img, id)
}

func (s *SixelProtocol) Place(id uint32, row, col, _, _ int) string {
	s.mu.RLock()
	data, ok := s.images[id]
	s.mu.RUnlock()

	if !ok {
		return ""
	}

	// Save cursor, move to position, emit sixel data, restore cursor.
	// A monotonic counter embedded in a no-op SGR sequence keeps the
	// output unique on every call so the diff renderer never skips it.
	seq := atomic.AddUint64(&placeCounter, 1)
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	sb.WriteString(data)
	fmt.Fprintf(&sb, "\x1b[u\x1b[%dm\x1b[0m", seq%255+1)

	return sb.String()
}

func (s *SixelProtocol) Delete(id uint32) string {
	s.mu.Lock()
	delete(s.images, id)
	s.mu.Unlock()

	return ""
}

func (s *SixelProtocol) Placeholder(width, height int) string {
	return BlankPlaceholder(width, height)
}

func (s *SixelProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	// Leave one row of vertical margin so the emitted data cannot push
	// the terminal into scrolling when the image sits near the bottom.
	if heightCells > 1 {
		heightCells--
	}
	return widthCells * s.cellW, heightCells * s.cellH
}
