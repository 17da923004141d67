package artcolor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	colorextractor "github.com/marekm4/color-extractor"
	"github.com/nfnt/resize"
)

// paletteSize is how many of the most frequent cover colors compete for
// dominance.
const paletteSize = 5

// Dull colors are disqualified from the vivid score.
const (
	dullBrightness = 0.35
	dullSaturation = 0.1
)

// thumbnailSide bounds the image fed to the quantizer.
const thumbnailSide = 256

// TermColor is a color on the terminal palette scale, each channel 0-1000.
type TermColor struct {
	R, G, B int
}

// Hex returns the color as "#rrggbb" for lipgloss styles.
func (c TermColor) Hex() string {
	to255 := func(v int) int {
		return int(math.Round(float64(v) * 255 / 1000))
	}
	return fmt.Sprintf("#%02x%02x%02x", to255(c.R), to255(c.G), to255(c.B))
}

// FromBytes decodes image data and extracts its dominant color. A decode
// or extraction failure is returned as an error so the caller can retry
// on the next art change.
func FromBytes(data []byte) (TermColor, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return TermColor{}, err
	}
	c, ok := Dominant(img)
	if !ok {
		return TermColor{}, fmt.Errorf("no colors extracted")
	}
	return c, nil
}

// Dominant returns the perceptually dominant color of img: the palette
// entry with the best frequency-weighted vividness. Covers dominated by
// dark or washed-out backgrounds resolve to their accent color rather
// than the background.
func Dominant(img image.Image) (TermColor, bool) {
	small := resize.Thumbnail(thumbnailSide, thumbnailSide, img, resize.Bilinear)

	palette := colorextractor.ExtractColors(small)
	if len(palette) == 0 {
		return TermColor{}, false
	}
	if len(palette) > paletteSize {
		palette = palette[:paletteSize]
	}

	best := 0
	bestRank := -1.0
	for i, c := range palette {
		rank := weight(i) * score(c)
		if rank > bestRank {
			best = i
			bestRank = rank
		}
	}

	return fromColor(palette[best]), true
}

// weight favors more frequent palette entries, falling off gently so a
// vivid accent can still beat a dull background.
func weight(i int) float64 {
	d := float64(i)/paletteSize + 1
	return 1 / (d * d)
}

// score rates a color's suitability as an accent. Dark or desaturated
// colors collapse to a near-zero score so they only win when the whole
// palette is dull.
func score(c color.Color) float64 {
	r, g, b := normalize(c)

	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sat := 0.0
	if maxc > 0 {
		sat = (maxc - minc) / maxc
	}

	brightness := 0.2126*r + 0.7152*g + 0.0722*b

	if brightness < dullBrightness || sat < dullSaturation {
		return 0.01 * brightness * brightness
	}
	return math.Sqrt(brightness * brightness * sat)
}

func normalize(c color.Color) (r, g, b float64) {
	r16, g16, b16, _ := c.RGBA()
	return float64(r16) / 65535, float64(g16) / 65535, float64(b16) / 65535
}

func fromColor(c color.Color) TermColor {
	r16, g16, b16, _ := c.RGBA()
	scale := func(v uint32) int {
		return int(math.Round(float64(v) * 1000 / 65535))
	}
	return TermColor{R: scale(r16), G: scale(g16), B: scale(b16)}
}
