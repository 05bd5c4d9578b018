package ui

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/geom"
	"github.com/hubastard/bumpslider/engine/gfx/renderer2d"
)

// handleKey is everything the handle image depends on apart from colors.
type handleKey struct {
	w, h   int
	orient Orientation
	near   bool
	detail float32
}

// handleCache owns the rendered handle image. The image holds the shape
// only; the handle position is applied when it is blitted.
type handleCache struct {
	surface renderer2d.Surface
	key     handleKey
	dirty   bool
	builds  int
}

func (c *handleCache) invalidate() {
	c.surface = nil
	c.dirty = true
}

// get returns the cached image, rebuilding it when it was invalidated or the
// key changed.
func (c *handleCache) get(p renderer2d.Painter, key handleKey, build func(renderer2d.Surface)) renderer2d.Surface {
	if c.surface != nil && !c.dirty && c.key == key {
		return c.surface
	}
	c.surface = p.NewSurface(key.w, key.h)
	c.key = key
	c.dirty = false
	c.builds++
	build(c.surface)
	return c.surface
}

func (s *BumpSlider[T]) handleKey(f axisFrame) handleKey {
	box := f.rect(0, 0, s.handleWidth(f), s.handleHeight(f))
	return handleKey{
		w:      int(math32.Ceil(box.W)),
		h:      int(math32.Ceil(box.H)),
		orient: s.orient,
		near:   s.nearEdge(),
		detail: s.detailWidth,
	}
}

// handleSurface returns the handle image, building it on first use.
func (s *BumpSlider[T]) handleSurface(p renderer2d.Painter, th *colors.Theme) renderer2d.Surface {
	f := s.frame()
	key := s.handleKey(f)
	return s.handle.get(p, key, func(surf renderer2d.Surface) {
		s.log.WithField("size", [2]int{key.w, key.h}).Debug("building handle image")
		s.drawBump(surf, f, th)
	})
}

// bumpPath is the handle outline in handle coordinates: travel along X and
// the distance from the resting edge along Y. Two cubic curves rise from the
// base corners to the apex in the middle; their control points sit a quarter
// of the length in from each end point.
func bumpPath(length, height float32) *geom.Path {
	q := length / 4
	mid := length / 2
	p := new(geom.Path).MoveTo(0, 0)
	p.CubeTo(geom.Pt(q, 0), geom.Pt(mid-q, height), geom.Pt(mid, height))
	p.CubeTo(geom.Pt(mid+q, height), geom.Pt(length-q, 0), geom.Pt(length, 0))
	return p
}

// drawBump renders the bump onto surf, filled with the background color and
// outlined with the button foreground.
func (s *BumpSlider[T]) drawBump(surf renderer2d.Surface, f axisFrame, th *colors.Theme) {
	hw, hh := s.handleWidth(f), s.handleHeight(f)
	local := axisFrame{horizontal: f.horizontal}
	if f.horizontal {
		local.box = geom.R(0, 0, hw, hh)
	} else {
		local.box = geom.R(0, 0, hh, hw)
	}

	m := local.affine()
	if !s.nearEdge() {
		// the resting edge is at the far side of the cross axis
		m = m.Mul(geom.FlipY(hh))
	}
	path := bumpPath(hw, hh).Transform(m)
	surf.FillPath(path, th.Color(colors.ColorBg))
	surf.StrokePath(path, s.detailWidth, th.Color(colors.ColorButtonFg))
}
