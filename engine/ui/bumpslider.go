package ui

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/hubastard/bumpslider/engine/geom"
)

// BumpSlider selects a value from a range by dragging a curved handle (the
// bump) along a track. It is generic over integer and floating point values;
// SliderB, SliderBF and SliderBD are the stock instantiations.
//
// Value changes are reported through OnValueChanged. With live update off
// (the default) a drag reports once, when the pointer is released.
type BumpSlider[T Number] struct {
	Common[*BumpSlider[T]]
	ValueRange[T]

	typeName      string
	orient        Orientation
	flags         SliderFlags
	labelInterval T
	detailWidth   float32
	borderRadius  float32
	liveUpdate    bool
	format        Formatter[T]

	handle handleCache

	dragging        bool
	dragStartOffset float32
	invokePending   bool

	log *logrus.Entry
}

type (
	SliderB  = BumpSlider[int]
	SliderBF = BumpSlider[float32]
	SliderBD = BumpSlider[float64]
)

const (
	defaultDetailWidth  = 2
	defaultBorderRadius = 4
)

// NewBumpSlider creates a slider covering rect. The label interval defaults
// to half the range.
func NewBumpSlider[T Number](rect geom.Rect, start, end, value T, o Orientation) *BumpSlider[T] {
	s := &BumpSlider[T]{
		ValueRange:   NewValueRange(start, end, value),
		typeName:     typeNameOf[T](),
		orient:       o,
		detailWidth:  defaultDetailWidth,
		borderRadius: defaultBorderRadius,
		format:       DefaultFormatter[T](),
	}
	s.Common = NewCommon(s)
	s.base.name = "SliderB" + strconv.FormatInt(nextWidgetID(), 10)
	s.base.SetPos(rect.X, rect.Y)
	s.base.SetSize(rect.W, rect.H)
	s.labelInterval = (end - start) / 2
	s.handle.invalidate()
	s.log = log.WithFields(logrus.Fields{"widget": s.base.name, "type": s.typeName})
	return s
}

// NewDefaultBumpSlider creates a horizontal 0..100 slider at 0.
func NewDefaultBumpSlider[T Number](rect geom.Rect) *BumpSlider[T] {
	return NewBumpSlider[T](rect, 0, 100, 0, Horizontal)
}

func NewSliderB(rect geom.Rect, start, end, value int, o Orientation) *SliderB {
	return NewBumpSlider(rect, start, end, value, o)
}

func NewSliderBF(rect geom.Rect, start, end, value float32, o Orientation) *SliderBF {
	return NewBumpSlider(rect, start, end, value, o)
}

func NewSliderBD(rect geom.Rect, start, end, value float64, o Orientation) *SliderBD {
	return NewBumpSlider(rect, start, end, value, o)
}

func typeNameOf[T Number]() string {
	var z T
	switch any(z).(type) {
	case int:
		return "SliderB"
	case float32:
		return "SliderBF"
	case float64:
		return "SliderBD"
	}
	return "BumpSlider"
}

func (s *BumpSlider[T]) Orientation() Orientation { return s.orient }
func (s *BumpSlider[T]) Flags() SliderFlags       { return s.flags }
func (s *BumpSlider[T]) LabelInterval() T         { return s.labelInterval }
func (s *BumpSlider[T]) DetailWidth() float32     { return s.detailWidth }
func (s *BumpSlider[T]) LiveUpdate() bool         { return s.liveUpdate }
func (s *BumpSlider[T]) Dragging() bool           { return s.dragging }

// HandleBuilds reports how many times the handle image has been rendered.
func (s *BumpSlider[T]) HandleBuilds() int { return s.handle.builds }

func (s *BumpSlider[T]) SetOrientation(o Orientation) *BumpSlider[T] {
	if s.orient != o {
		s.orient = o
		s.handle.invalidate()
		s.base.Damage()
	}
	return s
}

func (s *BumpSlider[T]) SetDetailWidth(w float32) *BumpSlider[T] {
	if s.detailWidth != w {
		s.detailWidth = w
		s.handle.invalidate()
		s.base.Damage()
	}
	return s
}

// SetLabelInterval sets the spacing between scale ticks; 0 hides the scale.
// At most 4096 ticks are drawn; an interval that would produce more leaves
// the scale short of end.
func (s *BumpSlider[T]) SetLabelInterval(n T) *BumpSlider[T] {
	if s.labelInterval != n {
		s.labelInterval = n
		s.base.Damage()
	}
	return s
}

// SetLiveUpdate makes drags report every accepted step instead of only the
// final value.
func (s *BumpSlider[T]) SetLiveUpdate(on bool) *BumpSlider[T] {
	if s.liveUpdate != on {
		s.liveUpdate = on
		s.base.Damage()
	}
	return s
}

// shapeFlags are the flags the handle image depends on.
var shapeFlags = []SliderFlag{ShowLabels, BumpTop, BumpRight}

func (s *BumpSlider[T]) SetFlags(f SliderFlags) *BumpSlider[T] {
	if s.flags == f {
		return s
	}
	for _, sf := range shapeFlags {
		if s.flags.Has(sf) != f.Has(sf) {
			s.handle.invalidate()
			break
		}
	}
	s.flags = f
	s.base.Damage()
	return s
}

func (s *BumpSlider[T]) SetFlag(f SliderFlag, on bool) *BumpSlider[T] {
	return s.SetFlags(s.flags.Set(f, on))
}

// SetRange replaces start and end, clamping the value into the new range.
func (s *BumpSlider[T]) SetRange(start, end T) *BumpSlider[T] {
	if s.setRange(start, end) {
		s.changed()
		s.flushPending()
	}
	s.base.Damage()
	return s
}

// SetFormatter replaces the label formatter; nil restores the default.
func (s *BumpSlider[T]) SetFormatter(f Formatter[T]) *BumpSlider[T] {
	if f == nil {
		f = DefaultFormatter[T]()
	}
	s.format = f
	s.base.Damage()
	return s
}

// InvalidateHandle forces the handle image to be rebuilt on the next draw.
// Call it after changing theme colors the slider depends on, since the
// colors are baked into the image.
func (s *BumpSlider[T]) InvalidateHandle() {
	s.handle.invalidate()
	s.base.Damage()
}

// SetValue clamps v into the range and stores it. A pending notification
// is delivered before returning. It returns the previous value.
func (s *BumpSlider[T]) SetValue(v T) T {
	old := s.value
	s.updateValue(v)
	s.flushPending()
	return old
}

// updateValue clamps and stores v, then notifies right away in live mode or
// marks the notification pending otherwise.
func (s *BumpSlider[T]) updateValue(v T) {
	if !s.store(v) {
		return
	}
	s.changed()
}

func (s *BumpSlider[T]) changed() {
	s.base.Damage()
	if s.liveUpdate {
		s.notify()
		return
	}
	s.invokePending = true
}

// flushPending delivers a pending notification. The flag is cleared first
// so handlers may call SetValue again without a second delivery.
func (s *BumpSlider[T]) flushPending() {
	if !s.invokePending {
		return
	}
	s.invokePending = false
	s.notify()
}

// Layout keeps the current size unless a fixed or expanding size is set.
// A slider without any size gets a default one along its orientation.
func (s *BumpSlider[T]) Layout(ctx *Context, constraints Constraints) LayoutResult {
	cw, ch := s.base.size[0], s.base.size[1]
	if cw == 0 && ch == 0 {
		cw, ch = 240, 64
		if s.orient == Vertical {
			cw, ch = ch, cw
		}
	}
	w := s.base.resolveAxis(s.base.widthMod, s.base.widthVal, cw, constraints.Min[0], constraints.Max[0])
	h := s.base.resolveAxis(s.base.heightMod, s.base.heightVal, ch, constraints.Min[1], constraints.Max[1])
	s.base.SetSize(w, h)
	return LayoutResult{Size: [2]float32{w, h}}
}
