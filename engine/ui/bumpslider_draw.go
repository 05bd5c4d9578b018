package ui

import (
	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/geom"
	"github.com/hubastard/bumpslider/engine/gfx/renderer2d"
)

// Draw renders the box, the scale, the handle and finally the button or the
// value label, in that order.
func (s *BumpSlider[T]) Draw(ctx *Context) {
	p := ctx.Painter
	th := s.base.Theme()

	DrawBox(p, th, s.base.Bounds(), s.borderRadius, th.Color(colors.ColorBg), th.Color(colors.ColorBorder))
	s.drawScale(p, th)

	p.PushClip(s.base.ContentArea())
	s.drawHandle(p, th)
	s.drawButton(p, th)
	p.PopClip()
}

func (s *BumpSlider[T]) drawScale(p renderer2d.Painter, th *colors.Theme) {
	DrawBox(p, th, s.base.ContentArea(), 0, th.Color(colors.ColorButtonBg), colors.Transparent)
	for _, v := range s.Ticks() {
		s.drawScaleItem(p, th, v)
	}
}

func (s *BumpSlider[T]) drawScaleItem(p renderer2d.Painter, th *colors.Theme, v T) {
	item := s.ScaleItemGeometry(v)
	c := th.Color(colors.ColorText)
	if s.flags.Has(HighlightValue) && v == s.value {
		c = th.Color(colors.ColorTextHighlight)
	}
	p.StrokePath(new(geom.Path).Line(item.A, item.B), s.detailWidth, c)
	if s.flags.Has(ShowLabels) {
		drawLabel(p, s.format(v), th.FontSize, item.Label, c)
	}
}

func (s *BumpSlider[T]) drawHandle(p renderer2d.Painter, th *colors.Theme) {
	surf := s.handleSurface(p, th)
	a, b := s.Baseline()
	p.StrokePath(new(geom.Path).Line(a, b), s.detailWidth, th.Color(colors.ColorButtonFg))
	p.DrawSurface(surf, s.HandleBox(s.value).TopLeft())
}

// drawButton draws the value inside the handle when ShowValue is set, and a
// round button with two chevrons pointing along the travel axis otherwise.
func (s *BumpSlider[T]) drawButton(p renderer2d.Painter, th *colors.Theme) {
	if s.flags.Has(ShowValue) {
		drawLabel(p, s.format(s.value), th.FontSize, s.HandleBox(s.value), th.Color(colors.ColorLabelText))
		return
	}

	r := s.ButtonBox()
	DrawCircle(p, r, th.Color(colors.ColorBg), th.Color(colors.ColorButtonFg), s.detailWidth)

	f := s.frame()
	d := s.handleWidth(f) / 6
	t := s.valueToOffset(f, s.value)
	c := float32(0)
	if !s.nearEdge() {
		c = f.crossLen() - d
	}
	c += d / 2
	inner, half, tip := d*0.1, d*0.3, d*0.35
	for _, dir := range [2]float32{-1, 1} {
		p.FillPath(new(geom.Path).Polygon(
			f.point(t+dir*inner, c+half),
			f.point(t+dir*tip, c),
			f.point(t+dir*inner, c-half),
		), th.Color(colors.ColorButtonFg))
	}
}
