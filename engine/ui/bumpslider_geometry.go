package ui

import (
	"math"

	"github.com/hubastard/bumpslider/engine/geom"
)

const (
	// labelSpan is the travel extent of a scale label, centered on its tick.
	labelSpan = 80
	// maxScaleTicks bounds the scale loop for tiny intervals.
	maxScaleTicks = 4096
)

func (s *BumpSlider[T]) frame() axisFrame {
	return newAxisFrame(s.base.ContentArea(), s.orient)
}

// nearEdge reports whether the handle rests on the cross-axis origin edge:
// the top of a horizontal slider or the left of a vertical one.
func (s *BumpSlider[T]) nearEdge() bool {
	if s.orient == Horizontal {
		return s.flags.Has(BumpTop)
	}
	return !s.flags.Has(BumpRight)
}

// ValueToOffset maps v to a distance along the travel axis of the content
// area, measured from its left (horizontal) or bottom (vertical) edge.
func (s *BumpSlider[T]) ValueToOffset(v T) float32 {
	return s.valueToOffset(s.frame(), v)
}

func (s *BumpSlider[T]) valueToOffset(f axisFrame, v T) float32 {
	span := float64(s.end) - float64(s.start)
	travel := float64(f.travelLen())
	if span == 0 || travel <= 0 {
		return 0
	}
	return float32((float64(v) - float64(s.start)) / span * travel)
}

// OffsetToValue is the inverse of ValueToOffset. Integer values are rounded
// to the nearest step and results are clamped into the range.
func (s *BumpSlider[T]) OffsetToValue(o float32) T {
	f := s.frame()
	span := float64(s.end) - float64(s.start)
	travel := float64(f.travelLen())
	if span == 0 || travel <= 0 {
		return s.start
	}
	v := float64(s.start) + float64(o)/travel*span
	if integral[T]() {
		v = math.Round(v)
	}
	lo, hi := float64(s.Min()), float64(s.Max())
	return T(math.Max(lo, math.Min(hi, v)))
}

// HandleWidth is the extent of the handle along the travel axis, twice the
// cross extent of the content area.
func (s *BumpSlider[T]) HandleWidth() float32 { return s.handleWidth(s.frame()) }

func (s *BumpSlider[T]) handleWidth(f axisFrame) float32 { return 2 * f.crossLen() }

// HandleHeight is the extent of the handle along the cross axis: 40% of the
// content cross extent with labels shown, 50% otherwise.
func (s *BumpSlider[T]) HandleHeight() float32 { return s.handleHeight(s.frame()) }

func (s *BumpSlider[T]) handleHeight(f axisFrame) float32 {
	if s.flags.Has(ShowLabels) {
		return f.crossLen() * 0.4
	}
	return f.crossLen() * 0.5
}

// handleCross is the cross coordinate of the handle's inner side.
func (s *BumpSlider[T]) handleCross(f axisFrame) float32 {
	if s.nearEdge() {
		return 0
	}
	return f.crossLen() - s.handleHeight(f)
}

// HandleBox returns the screen rectangle of the handle when the slider
// holds v. It is centered on v along the travel axis and flush with the
// resting edge.
func (s *BumpSlider[T]) HandleBox(v T) geom.Rect {
	f := s.frame()
	hw, hh := s.handleWidth(f), s.handleHeight(f)
	return f.rect(s.valueToOffset(f, v)-hw/2, s.handleCross(f), hw, hh)
}

// ScaleItem is the geometry of one scale tick.
type ScaleItem struct {
	A, B  geom.Point
	Label geom.Rect
}

// ScaleItemGeometry returns the tick line and label rectangle for v. The
// line starts 20% into the content from the handle's resting edge and ends
// at 60% (labels shown) or 90%; the label fills the remaining cross extent.
func (s *BumpSlider[T]) ScaleItemGeometry(v T) ScaleItem {
	f := s.frame()
	cross := f.crossLen()
	off := s.valueToOffset(f, v)
	inset := cross * 0.2
	lineEnd := cross * 0.9
	if s.flags.Has(ShowLabels) {
		lineEnd = cross * 0.6
	}
	rest := cross - lineEnd

	if s.nearEdge() {
		return ScaleItem{
			A:     f.point(off, inset),
			B:     f.point(off, lineEnd),
			Label: f.rect(off-labelSpan/2, lineEnd, labelSpan, rest),
		}
	}
	return ScaleItem{
		A:     f.point(off, cross-inset),
		B:     f.point(off, rest),
		Label: f.rect(off-labelSpan/2, 0, labelSpan, rest),
	}
}

// Baseline returns the track line along the handle's resting edge.
func (s *BumpSlider[T]) Baseline() (a, b geom.Point) {
	f := s.frame()
	c := float32(0)
	if !s.nearEdge() {
		c = f.crossLen()
	}
	return f.point(0, c), f.point(f.travelLen(), c)
}

// ButtonBox is the circle drawn on the handle when the value is hidden. Its
// diameter is a sixth of the handle width and it sits on the resting edge.
func (s *BumpSlider[T]) ButtonBox() geom.Rect {
	f := s.frame()
	d := s.handleWidth(f) / 6
	c := float32(0)
	if !s.nearEdge() {
		c = f.crossLen() - d
	}
	return f.rect(s.valueToOffset(f, s.value)-d/2, c, d, d)
}

// Ticks lists the scale values from start to end, stepping by the label
// interval in the direction of end. It is empty when the interval is 0 or
// the tick count is not finite.
func (s *BumpSlider[T]) Ticks() []T {
	if s.labelInterval == 0 {
		return nil
	}
	start := float64(s.start)
	span := float64(s.end) - start
	step := math.Abs(float64(s.labelInterval))
	if span < 0 {
		step = -step
	}
	count := span / step
	if math.IsNaN(count) || math.IsInf(count, 0) || count < 0 {
		return nil
	}
	n := int(math.Floor(count + 1e-9))
	if n > maxScaleTicks-1 {
		n = maxScaleTicks - 1
	}
	ticks := make([]T, 0, n+1)
	for k := 0; k <= n; k++ {
		ticks = append(ticks, T(start+float64(k)*step))
	}
	return ticks
}
