package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/geom"
	"github.com/hubastard/bumpslider/engine/gfx/renderer2d"
	"github.com/hubastard/bumpslider/engine/text"
)

type opKind string

const (
	opFill   opKind = "fill"
	opStroke opKind = "stroke"
	opText   opKind = "text"
	opClip   opKind = "clip"
	opUnclip opKind = "unclip"
	opBlit   opKind = "blit"
)

type op struct {
	kind  opKind
	color colors.Color
	pts   []geom.Point // first polyline of the path
	text  string
	size  float32
	at    geom.Point
	rect  geom.Rect
}

// recordingPainter logs every call. Text is measured as half the font size
// per character and one font size high.
type recordingPainter struct {
	ops      []op
	surfaces []*recordingPainter
	w, h     int
}

func firstPolyline(p *geom.Path) []geom.Point {
	lines := p.Flatten(0.5)
	if len(lines) == 0 {
		return nil
	}
	return lines[0]
}

func (r *recordingPainter) FillPath(p *geom.Path, c colors.Color) {
	r.ops = append(r.ops, op{kind: opFill, color: c, pts: firstPolyline(p)})
}

func (r *recordingPainter) StrokePath(p *geom.Path, width float32, c colors.Color) {
	r.ops = append(r.ops, op{kind: opStroke, color: c, size: width, pts: firstPolyline(p)})
}

func (r *recordingPainter) MeasureText(s string, size float32) geom.Size {
	return geom.Size{W: float32(len(s)) * size * 0.5, H: size}
}

func (r *recordingPainter) DrawText(s string, size float32, at geom.Point, c colors.Color) {
	r.ops = append(r.ops, op{kind: opText, text: s, size: size, at: at, color: c})
}

func (r *recordingPainter) PushClip(rect geom.Rect) {
	r.ops = append(r.ops, op{kind: opClip, rect: rect})
}

func (r *recordingPainter) PopClip() { r.ops = append(r.ops, op{kind: opUnclip}) }

func (r *recordingPainter) NewSurface(w, h int) renderer2d.Surface {
	s := &recordingPainter{w: w, h: h}
	r.surfaces = append(r.surfaces, s)
	return s
}

func (r *recordingPainter) DrawSurface(s renderer2d.Surface, at geom.Point) {
	r.ops = append(r.ops, op{kind: opBlit, at: at, rect: geom.Rect{X: at.X, Y: at.Y, W: s.Size().W, H: s.Size().H}})
}

func (r *recordingPainter) Size() geom.Size { return geom.Size{W: float32(r.w), H: float32(r.h)} }

func (r *recordingPainter) reset() { r.ops = nil }

func (r *recordingPainter) filter(k opKind) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == k {
			out = append(out, o)
		}
	}
	return out
}

func (r *recordingPainter) index(k opKind) int {
	for i, o := range r.ops {
		if o.kind == k {
			return i
		}
	}
	return -1
}

func newTestContext() (*Context, *recordingPainter) {
	p := &recordingPainter{}
	return &Context{Viewport: geom.R(0, 0, 800, 600), Painter: p, Theme: colors.DefaultTheme()}, p
}

func newPixelContext(t *testing.T, w, h int) (*Context, *image.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Context{
		Viewport: geom.R(0, 0, float32(w), float32(h)),
		Painter:  renderer2d.New(img, text.Default()),
		Theme:    colors.DefaultTheme(),
	}, img
}

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want colors.Color, msg string) {
	t.Helper()
	got := img.RGBAAt(x, y)
	w := want.NRGBA()
	assert.InDelta(t, w.R, got.R, 2, msg)
	assert.InDelta(t, w.G, got.G, 2, msg)
	assert.InDelta(t, w.B, got.B, 2, msg)
	assert.InDelta(t, w.A, got.A, 2, msg)
}
