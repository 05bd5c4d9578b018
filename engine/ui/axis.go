package ui

import "github.com/hubastard/bumpslider/engine/geom"

// axisFrame describes a box in travel/cross coordinates. Travel runs left to
// right for horizontal frames and bottom to top for vertical ones; cross
// runs top to bottom or left to right respectively. Everything orientation
// dependent is computed in these coordinates and mapped to the screen only
// through point, rect and affine.
type axisFrame struct {
	box        geom.Rect
	horizontal bool
}

func newAxisFrame(box geom.Rect, o Orientation) axisFrame {
	return axisFrame{box: box, horizontal: o == Horizontal}
}

func (f axisFrame) travelLen() float32 {
	if f.horizontal {
		return f.box.W
	}
	return f.box.H
}

func (f axisFrame) crossLen() float32 {
	if f.horizontal {
		return f.box.H
	}
	return f.box.W
}

// affine maps (travel, cross) points, stored as X and Y, to the screen.
func (f axisFrame) affine() geom.Affine {
	if f.horizontal {
		return geom.Affine{XX: 1, YY: 1, X0: f.box.X, Y0: f.box.Y}
	}
	return geom.Affine{XY: 1, YX: -1, X0: f.box.X, Y0: f.box.Bottom()}
}

func (f axisFrame) point(t, c float32) geom.Point {
	return f.affine().Apply(geom.Pt(t, c))
}

// rect maps the travel span [t, t+tl] and cross span [c, c+cl].
func (f axisFrame) rect(t, c, tl, cl float32) geom.Rect {
	if f.horizontal {
		return geom.R(f.box.X+t, f.box.Y+c, tl, cl)
	}
	return geom.R(f.box.X+c, f.box.Bottom()-t-tl, cl, tl)
}

// travelDelta projects a screen-space pointer delta onto the travel axis.
// Moving right or up increases travel.
func (f axisFrame) travelDelta(dx, dy float32) float32 {
	if f.horizontal {
		return dx
	}
	return -dy
}
