package renderer2d

import (
	"image"
	"image/draw"

	"github.com/chewxy/math32"

	"github.com/hubastard/bumpslider/engine/geom"
)

// NewSurface returns an off-screen renderer sharing rd's font. The surface
// starts fully transparent.
func (rd *Renderer2D) NewSurface(w, h int) Surface {
	rd.stats.Surfaces++
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return New(image.NewRGBA(image.Rect(0, 0, w, h)), rd.font)
}

func (rd *Renderer2D) Size() geom.Size {
	b := rd.dst.Bounds()
	return geom.Size{W: float32(b.Dx()), H: float32(b.Dy())}
}

// DrawSurface composites s with its top-left corner at at, rounded to whole
// pixels. Surfaces made by other Painter implementations are ignored.
func (rd *Renderer2D) DrawSurface(s Surface, at geom.Point) {
	src, ok := s.(*Renderer2D)
	if !ok {
		return
	}
	rd.stats.Blits++
	sb := src.dst.Bounds()
	origin := image.Pt(int(math32.Round(at.X)), int(math32.Round(at.Y)))
	r := sb.Sub(sb.Min).Add(origin)
	area := r.Intersect(rd.clip())
	if area.Empty() {
		return
	}
	draw.Draw(rd.dst, area, src.dst, sb.Min.Add(area.Min.Sub(origin)), draw.Over)
}
