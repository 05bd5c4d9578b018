package renderer2d

import (
	"image"
	"image/draw"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/geom"
	"github.com/hubastard/bumpslider/engine/text"
)

// Tolerance is the maximum distance in pixels between a flattened curve and
// the real one.
const Tolerance = 0.2

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	Fills    int
	Strokes  int
	Texts    int
	Blits    int
	Surfaces int
}

// TotalOps reports draw operations submitted this frame.
func (s Statistics) TotalOps() int { return s.Fills + s.Strokes + s.Texts + s.Blits }

// Renderer2D rasterizes paths and text into an RGBA image.
type Renderer2D struct {
	dst   *image.RGBA
	font  *text.Font
	clips []image.Rectangle

	rast  vector.Rasterizer
	mask  *image.Alpha
	stats Statistics
}

// New creates a renderer drawing into dst. A nil font selects text.Default.
func New(dst *image.RGBA, font *text.Font) *Renderer2D {
	if font == nil {
		font = text.Default()
	}
	rd := &Renderer2D{dst: dst, font: font}
	return rd
}

func (rd *Renderer2D) Target() *image.RGBA { return rd.dst }
func (rd *Renderer2D) Font() *text.Font    { return rd.font }

// BeginScene resets the statistics and the clip stack.
func (rd *Renderer2D) BeginScene() {
	rd.stats = Statistics{}
	rd.clips = rd.clips[:0]
}

func (rd *Renderer2D) EndScene() {}

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// Resize swaps the target for a new image of w x h pixels.
func (rd *Renderer2D) Resize(w, h int) {
	if b := rd.dst.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	rd.dst = image.NewRGBA(image.Rect(0, 0, w, h))
	rd.clips = rd.clips[:0]
}

// Clear fills the whole target, ignoring the clip stack.
func (rd *Renderer2D) Clear(c colors.Color) {
	draw.Draw(rd.dst, rd.dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

func (rd *Renderer2D) clip() image.Rectangle {
	if n := len(rd.clips); n > 0 {
		return rd.clips[n-1]
	}
	return rd.dst.Bounds()
}

// PushClip intersects r with the current clip.
func (rd *Renderer2D) PushClip(r geom.Rect) {
	rd.clips = append(rd.clips, rd.clip().Intersect(r.Image()))
}

func (rd *Renderer2D) PopClip() {
	if n := len(rd.clips); n > 0 {
		rd.clips = rd.clips[:n-1]
	}
}

func (rd *Renderer2D) FillPath(p *geom.Path, c colors.Color) {
	rd.stats.Fills++
	rd.fillPolylines(p.Flatten(Tolerance), c)
}

// StrokePath draws every segment of p as a quad of the given width, with
// square joins filling the gaps between consecutive segments.
func (rd *Renderer2D) StrokePath(p *geom.Path, width float32, c colors.Color) {
	rd.stats.Strokes++
	if width <= 0 {
		return
	}
	h := width * 0.5
	var polys [][]geom.Point
	for _, line := range p.Flatten(Tolerance) {
		for i := 1; i < len(line); i++ {
			if q, ok := segmentQuad(line[i-1], line[i], h); ok {
				polys = append(polys, q)
			}
			if i < len(line)-1 || closed(line) {
				polys = append(polys, joinPatch(line[i], h))
			}
		}
	}
	rd.fillPolylines(polys, c)
}

func closed(line []geom.Point) bool {
	return len(line) > 2 && line[0] == line[len(line)-1]
}

// segmentQuad returns the quad a+n, b+n, b-n, a-n. Its winding does not
// depend on the direction of a->b, so overlapping quads never cancel out.
func segmentQuad(a, b geom.Point, h float32) ([]geom.Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math32.Hypot(dx, dy)
	if l == 0 {
		return nil, false
	}
	nx, ny := -dy/l*h, dx/l*h
	return []geom.Point{
		geom.Pt(a.X+nx, a.Y+ny),
		geom.Pt(b.X+nx, b.Y+ny),
		geom.Pt(b.X-nx, b.Y-ny),
		geom.Pt(a.X-nx, a.Y-ny),
	}, true
}

// joinPatch is an octagon of radius h wound the same way as segmentQuad.
func joinPatch(c geom.Point, h float32) []geom.Point {
	pts := make([]geom.Point, 0, 9)
	for i := 0; i <= 8; i++ {
		a := -float32(i) * math32.Pi / 4
		pts = append(pts, geom.Point{X: c.X + h*math32.Cos(a), Y: c.Y + h*math32.Sin(a)})
	}
	return pts
}

func (rd *Renderer2D) fillPolylines(polys [][]geom.Point, c colors.Color) {
	if len(polys) == 0 || c[3] <= 0 {
		return
	}
	bb := bounds(polys)
	area := bb.Intersect(rd.clip())
	if area.Empty() {
		return
	}

	w, h := bb.Dx(), bb.Dy()
	rd.rast.Reset(w, h)
	rd.rast.DrawOp = draw.Src
	ox, oy := float32(bb.Min.X), float32(bb.Min.Y)
	for _, poly := range polys {
		rd.rast.MoveTo(poly[0].X-ox, poly[0].Y-oy)
		for _, q := range poly[1:] {
			rd.rast.LineTo(q.X-ox, q.Y-oy)
		}
		rd.rast.ClosePath()
	}

	mr := image.Rect(0, 0, w, h)
	if rd.mask == nil || !rd.mask.Bounds().Eq(mr) {
		rd.mask = image.NewAlpha(mr)
	}
	rd.rast.Draw(rd.mask, mr, image.Opaque, image.Point{})
	draw.DrawMask(rd.dst, area, image.NewUniform(c.NRGBA()), image.Point{}, rd.mask, area.Min.Sub(bb.Min), draw.Over)
}

func bounds(polys [][]geom.Point) image.Rectangle {
	minX, minY := float32(math32.MaxFloat32), float32(math32.MaxFloat32)
	maxX, maxY := float32(-math32.MaxFloat32), float32(-math32.MaxFloat32)
	for _, poly := range polys {
		for _, p := range poly {
			minX = math32.Min(minX, p.X)
			minY = math32.Min(minY, p.Y)
			maxX = math32.Max(maxX, p.X)
			maxY = math32.Max(maxY, p.Y)
		}
	}
	return geom.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}.Image()
}

func (rd *Renderer2D) MeasureText(s string, size float32) geom.Size {
	w, h := text.MeasureText(rd.font, s, size)
	return geom.Size{W: w, H: h}
}

func (rd *Renderer2D) DrawText(s string, size float32, at geom.Point, c colors.Color) {
	rd.stats.Texts++
	text.DrawText(rd.dst, rd.clip(), rd.font, size, at.X, at.Y, s, c.NRGBA())
}
