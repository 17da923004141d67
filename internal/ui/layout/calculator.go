// Package layout provides pure functions for screen geometry calculations.
//
// All sizes are in terminal cells unless a name says pixels. Pixel math uses
// the configured font cell size so that album art, which is square in
// pixels, renders square on screen.
package layout

import "math"

// Gutter is the fixed number of columns between the art region and the
// playlist region.
const Gutter = 2

// TextReserve is the number of rows at the bottom of the art region kept
// free for the track text block, progress bar and status line. The reserve
// is fixed so geometry depends only on terminal size, never on track
// metadata.
const TextReserve = 6

// FontSize is the terminal cell size in pixels, from configuration.
type FontSize struct {
	W int
	H int
}

// Geometry describes every screen region for one terminal size and mode.
// It is a pure function of its inputs; see Compute.
type Geometry struct {
	Rows int
	Cols int

	// Art region (full terminal when the playlist is hidden).
	ArtRows int
	ArtCols int

	// Playlist region. Cols is 0 when the playlist is not shown.
	PlaylistCols int
	PlaylistRows int

	// Square image box. Px is the side in pixels, Cols/Rows the same box in
	// cells for the configured font size. Zero when the region is too small.
	ImagePx   int
	ImageCols int
	ImageRows int

	// 1-based cell position of the image top-left corner, centered within
	// the space above the text block. VOffsetPx is the vertical centering
	// offset in pixels.
	ImageCol  int
	ImageRow  int
	VOffsetPx int

	// 1-based first row of the track text block. 0 in art-only mode.
	TextRow   int
	TextWidth int
}

// PlaylistFits reports whether the playlist region should be shown. The
// playlist only helps when the terminal is wide relative to tall; a strict
// rows/cols < 1/3 test is the proxy for "enough horizontal room beside the
// art".
func PlaylistFits(rows, cols int, showPlaylist, artOnly bool) bool {
	if !showPlaylist || artOnly {
		return false
	}
	return 3*rows < cols
}

// ArtRegion returns the art region dimensions. With a visible playlist the
// art keeps the left 2/5 of the columns; otherwise it takes the whole
// terminal.
func ArtRegion(rows, cols int, playlistVisible bool) (artRows, artCols int) {
	if playlistVisible {
		return rows, int(math.Round(float64(cols) * 2.0 / 5.0))
	}
	return rows, cols
}

// ImageSize returns the square pixel box that fits the available cell
// region, together with its size in cells. The binding constraint is
// whichever axis offers fewer pixels.
func ImageSize(availRows, artCols int, font FontSize) (px, cols, rows int) {
	if availRows <= 0 || artCols <= 0 || font.W <= 0 || font.H <= 0 {
		return 0, 0, 0
	}
	heightPx := availRows * font.H
	widthPx := artCols * font.W
	px = min(heightPx, widthPx)
	return px, px / font.W, px / font.H
}

// Compute derives the full screen geometry. It is deterministic: identical
// inputs always produce an identical Geometry value.
func Compute(rows, cols int, showPlaylist, artOnly bool, font FontSize) Geometry {
	g := Geometry{Rows: rows, Cols: cols}

	playlistVisible := PlaylistFits(rows, cols, showPlaylist, artOnly)
	g.ArtRows, g.ArtCols = ArtRegion(rows, cols, playlistVisible)

	if playlistVisible {
		g.PlaylistCols = cols - g.ArtCols - Gutter
		g.PlaylistRows = rows
		if g.PlaylistCols < 0 {
			g.PlaylistCols = 0
		}
	}

	imageArea := g.ArtRows
	if !artOnly {
		imageArea -= TextReserve
	}
	g.ImagePx, g.ImageCols, g.ImageRows = ImageSize(imageArea, g.ArtCols, font)

	if g.ImagePx > 0 {
		g.VOffsetPx = (imageArea*font.H - g.ImagePx) / 2
		g.ImageRow = g.VOffsetPx/font.H + 1
		g.ImageCol = (g.ArtCols-g.ImageCols)/2 + 1
	}

	if !artOnly {
		// Reserve layout: blank, up to three text rows, progress bar,
		// status line.
		g.TextRow = g.ArtRows - TextReserve + 2
		if g.TextRow < 1 {
			g.TextRow = 1
		}
		g.TextWidth = g.ArtCols
	}

	return g
}

// Engine caches the last computed geometry and recomputes only when an
// input changes or a recompute is forced (mode toggles).
type Engine struct {
	font   FontSize
	last   Geometry
	inputs inputs
	valid  bool
}

type inputs struct {
	rows, cols   int
	showPlaylist bool
	artOnly      bool
}

// NewEngine creates a layout engine for the given font cell size.
func NewEngine(font FontSize) *Engine {
	return &Engine{font: font}
}

// Layout returns the geometry for the given terminal size and mode flags,
// and whether it differs from the previously returned geometry.
func (e *Engine) Layout(rows, cols int, showPlaylist, artOnly bool) (Geometry, bool) {
	in := inputs{rows: rows, cols: cols, showPlaylist: showPlaylist, artOnly: artOnly}
	if e.valid && in == e.inputs {
		return e.last, false
	}
	g := Compute(rows, cols, showPlaylist, artOnly, e.font)
	changed := !e.valid || g != e.last
	e.inputs = in
	e.last = g
	e.valid = true
	return g, changed
}

// Invalidate forces the next Layout call to recompute and report a change.
func (e *Engine) Invalidate() {
	e.valid = false
}

// Font returns the configured font cell size.
func (e *Engine) Font() FontSize {
	return e.font
}
