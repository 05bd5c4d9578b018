package text

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawText draws s with its top-left corner at (x,y). Positive Y goes
// downward. Pixels outside clip are left untouched.
func DrawText(dst *image.RGBA, clip image.Rectangle, f *Font, size, x, y float32, s string, c color.Color) {
	clip = clip.Intersect(dst.Bounds())
	if clip.Empty() || s == "" {
		return
	}
	m := f.Metrics(size)
	d := &font.Drawer{
		Dst:  dst.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(c),
		Face: f.Face(size),
	}
	baseY := y + m.Ascent
	for _, line := range strings.Split(s, "\n") {
		d.Dot = fixed.Point26_6{X: toFixed(x), Y: toFixed(baseY)}
		d.DrawString(line)
		baseY += m.LineHeight()
	}
}

// MeasureText returns the size of the box DrawText fills for s.
func MeasureText(f *Font, s string, size float32) (width, height float32) {
	face := f.Face(size)
	lineH := f.Metrics(size).LineHeight()
	for _, line := range strings.Split(s, "\n") {
		w := float32(font.MeasureString(face, line)) / 64
		if w > width {
			width = w
		}
		height += lineH
	}
	return width, height
}

func LineHeight(f *Font, size float32) float32 { return f.Metrics(size).LineHeight() }

func toFixed(v float32) fixed.Int26_6 { return fixed.Int26_6(v * 64) }
