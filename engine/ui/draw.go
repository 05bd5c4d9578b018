package ui

import (
	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/geom"
	"github.com/hubastard/bumpslider/engine/gfx/renderer2d"
)

// labelMargin is the inset kept between a label and its target rectangle.
const labelMargin = 5

// DrawBox fills r and outlines it with the theme border width. Transparent
// colors skip their part.
func DrawBox(p renderer2d.Painter, th *colors.Theme, r geom.Rect, radius float32, fill, border colors.Color) {
	if r.Empty() {
		return
	}
	if fill[3] > 0 {
		p.FillPath(new(geom.Path).RoundedRect(r, radius), fill)
	}
	if border[3] > 0 && th.BorderWidth > 0 {
		// stroke centered on the inner edge of the border
		hw := th.BorderWidth * 0.5
		p.StrokePath(new(geom.Path).RoundedRect(r.Inset(hw), radius), th.BorderWidth, border)
	}
}

// DrawCircle fills the circle inscribed in r and strokes its outline.
func DrawCircle(p renderer2d.Painter, r geom.Rect, fill, border colors.Color, width float32) {
	if r.Empty() {
		return
	}
	circle := new(geom.Path).Ellipse(r)
	if fill[3] > 0 {
		p.FillPath(circle, fill)
	}
	if border[3] > 0 && width > 0 {
		p.StrokePath(circle, width, border)
	}
}

// fitText shrinks size one point at a time until s fits in maxW x maxH.
func fitText(p renderer2d.Painter, s string, size, maxW, maxH float32) float32 {
	for size > 1 {
		sz := p.MeasureText(s, size)
		if sz.W <= maxW && sz.H <= maxH {
			break
		}
		size--
	}
	return maxf(size, 1)
}

// drawLabel draws s centered in r, scaling the font down from size until it
// fits inside r minus labelMargin.
func drawLabel(p renderer2d.Painter, s string, size float32, r geom.Rect, c colors.Color) {
	if s == "" || r.Empty() {
		return
	}
	inner := r.Inset(labelMargin)
	size = fitText(p, s, size, inner.W, inner.H)
	at := r.Align(p.MeasureText(s, size)).TopLeft()
	p.DrawText(s, size, at, c)
}
