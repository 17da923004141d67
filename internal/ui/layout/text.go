package layout

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vinyl/internal/ui/render"
)

// TextLayout identifies which track text arrangement fits the art region
// width.
type TextLayout int

const (
	// TextOneLine puts artist and album together on the second line.
	TextOneLine TextLayout = iota
	// TextStacked puts title, artist and album on three lines.
	TextStacked
	// TextNoAlbum puts title and artist on two lines.
	TextNoAlbum
)

// TextSeparator joins artist and album on a shared line.
const TextSeparator = " - "

// FitText arranges the track metadata into lines no wider than width.
// Strings that exceed the width keep their front and gain an ellipsis.
func FitText(title, artist, album string, width int) (TextLayout, []string) {
	title = render.Sanitize(title)
	artist = render.Sanitize(artist)
	album = render.Sanitize(album)

	if album == "" {
		return TextNoAlbum, []string{
			render.Truncate(title, width),
			render.Truncate(artist, width),
		}
	}

	combined := artist + TextSeparator + album
	if lipgloss.Width(combined) <= width {
		return TextOneLine, []string{
			render.Truncate(title, width),
			combined,
		}
	}

	return TextStacked, []string{
		render.Truncate(title, width),
		render.Truncate(artist, width),
		render.Truncate(album, width),
	}
}
