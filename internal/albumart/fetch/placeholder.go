package fetch

import (
	"bytes"
	"hash/fnv"
	"image"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// PlaceholderSide is the pixel size of generated covers, large enough
// for any reasonable art region.
const PlaceholderSide = 512

// Placeholder renders a deterministic cover for a track without art: a
// gradient background and a record with a label colored from the seed.
// The same seed always produces the same image.
func Placeholder(side int, seed string) image.Image {
	h := fnv.New32a()
	h.Write([]byte(seed))
	n := h.Sum32()

	hue := float64(n % 360)
	light := colorful.Hsv(hue, 0.35, 0.55)
	dark := colorful.Hsv(hue, 0.55, 0.25)
	label := colorful.Hsv(float64((n/360)%360), 0.65, 0.85)

	s := float64(side)
	dc := gg.NewContext(side, side)

	grad := gg.NewLinearGradient(0, 0, s, s)
	grad.AddColorStop(0, light)
	grad.AddColorStop(1, dark)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, s, s)
	dc.Fill()

	// The record
	cx, cy := s/2, s/2
	dc.SetRGBA(0.08, 0.08, 0.1, 0.95)
	dc.DrawCircle(cx, cy, s*0.38)
	dc.Fill()

	// Grooves
	dc.SetRGBA(0.22, 0.22, 0.26, 0.8)
	dc.SetLineWidth(1.5)
	for _, r := range []float64{0.34, 0.30, 0.26, 0.22} {
		dc.DrawCircle(cx, cy, s*r)
		dc.Stroke()
	}

	// Label and spindle hole
	dc.SetColor(label)
	dc.DrawCircle(cx, cy, s*0.12)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	dc.DrawCircle(cx, cy, s*0.015)
	dc.Fill()

	return dc.Image()
}

// PlaceholderPNG is Placeholder pre-encoded for the presenter and cache.
func PlaceholderPNG(side int, seed string) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Placeholder(side, seed)); err != nil {
		return nil
	}
	return buf.Bytes()
}
