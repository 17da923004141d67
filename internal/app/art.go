// internal/app/art.go

package app

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vinyl/internal/artcolor"
	"github.com/llehouerou/vinyl/internal/errmsg"
	"github.com/llehouerou/vinyl/internal/mpd"
	"github.com/llehouerou/vinyl/internal/ui/styles"
)

// applyLayout recomputes the screen geometry and resizes the dependent
// components. A size change invalidates the prepared image, so the art
// is re-encoded for the new box.
func (m *Model) applyLayout() {
	g, changed := m.Layout.Layout(m.height, m.width, m.showPlaylist, m.artOnly)
	if !changed {
		return
	}
	m.geom = g
	m.Queue.SetSize(g.PlaylistCols, g.PlaylistRows)
	m.Art.SetSize(g.ImageCols, g.ImageRows)
	m.refreshArt()
	if m.showHelp {
		m.sizeHelp()
	}
	m.dirty = true
}

// refreshArt brings the displayed art and the auto theme color in step
// with the current track. Both sides skip work they have already done
// for this track and size, so calling it again after a help overlay or a
// resume is cheap.
//
// A fetch never fails outright (the fetcher falls back to a generated
// placeholder), but decoding can; the previous image then stays in place
// and the next trigger retries.
func (m *Model) refreshArt() {
	uri := m.snap.Current.File
	if uri == "" || m.snap.State == mpd.Stopped || m.geom.ImageCols <= 0 {
		return
	}

	needImage := m.Art.NeedsPrepare(uri)
	needColor := styles.T().HasAuto() && uri != m.artURI
	if !needImage && !needColor {
		m.dirty = true
		return
	}

	data, _ := m.Fetch.Fetch(uri)
	if needImage {
		if err := m.Art.Prepare(uri, data); err != nil {
			m.setNotice(errmsg.FormatWith(errmsg.OpArtDecode, filepath.Base(uri), err))
		}
	}
	if needColor {
		if c, err := artcolor.FromBytes(data); err == nil {
			styles.T().ApplyAuto(lipgloss.Color(c.Hex()))
		}
		m.artURI = uri
	}
	m.dirty = true
}
