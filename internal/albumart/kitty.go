// Package albumart renders album covers in the terminal through the Kitty
// graphics protocol, with a Sixel fallback for terminals without Kitty
// support.
package albumart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"
)

// KittyProtocol implements ImageProtocol using the Kitty graphics
// protocol. Images live in terminal memory, so placement is a short
// by-ID reference.
type KittyProtocol struct {
	cellW int
	cellH int
}

// NewKittyProtocol creates a Kitty protocol back-end for the given cell
// pixel size. Zero dimensions fall back to the terminal-reported size.
func NewKittyProtocol(cellW, cellH int) *KittyProtocol {
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = getCellSize()
	}
	return &KittyProtocol{cellW: cellW, cellH: cellH}
}

func (k *KittyProtocol) Prepare(img image.Image, id uint32) (string, error) {
	return TransmitImage(img, id)
}

func (k *KittyProtocol) PrepareFromPNG(pngData []byte, id uint32) (string, error) {
	return TransmitImageFromPNG(pngData, id)
}

func (k *KittyProtocol) Place(id uint32, row, col, width, height int) string {
	return PlaceImage(id, row, col, width, height)
}

func (k *KittyProtocol) Delete(id uint32) string {
	return DeleteImage(id)
}

func (k *KittyProtocol) Placeholder(width, height int) string {
	return BlankPlaceholder(width, height)
}

func (k *KittyProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return widthCells * k.cellW, heightCells * k.cellH
}

// TransmitImage sends an image to the terminal using Kitty protocol.
// The image is transmitted but not displayed (a=t).
func TransmitImage(img image.Image, id uint32) (string, error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}
	return TransmitImageFromPNG(data, id)
}

// TransmitImageFromPNG sends pre-encoded PNG data to the terminal using
// Kitty protocol.
func TransmitImageFromPNG(pngData []byte, id uint32) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	// Build transmission command
	// a=t: transmit only (don't display)
	// f=100: PNG format
	// i=ID: image ID for later reference
	// q=2: quiet mode (suppress responses)
	var sb strings.Builder

	// Kitty protocol requires chunked transmission for large images
	// Each chunk max 4096 bytes
	const chunkSize = 4096

	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		chunk := encoded[i:end]

		moreChunks := 0
		if end < len(encoded) {
			moreChunks = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			// First chunk carries all parameters
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, moreChunks)
		} else {
			fmt.Fprintf(&sb, "m=%d;", moreChunks)
		}
		sb.WriteString(chunk)
		sb.WriteString(escEnd)
	}

	return sb.String(), nil
}

// PlaceImage returns the escape sequence to display a previously
// transmitted image. row and col are 1-based terminal coordinates, width
// and height in cells. A fixed placement ID (p=1) makes repositioning
// replace the previous placement instead of leaving ghost images.
func PlaceImage(id uint32, row, col, width, height int) string {
	// a=p: place image
	// i=ID: image ID
	// p=1: fixed placement ID (replaces existing placement with same ID)
	// c=cols, r=rows: size in cells
	// C=1: don't move cursor after placing
	var sb strings.Builder

	// Save cursor, move to position, place image, restore cursor
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")

	return sb.String()
}

// DeleteImage returns the escape sequence to delete a transmitted image
// and clear its placements.
func DeleteImage(id uint32) string {
	// a=d, d=i: delete by image ID including all placements
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

// DeleteAll returns the escape sequence clearing every transmitted image.
// Written once on teardown so no image survives the session.
func DeleteAll() string {
	return escStart + "a=d,d=A,q=2;" + escEnd
}

// BlankPlaceholder returns a block of spaces for the image area so
// lipgloss measures the layout instead of the image escapes.
func BlankPlaceholder(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
