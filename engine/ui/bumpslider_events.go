package ui

import (
	"github.com/hubastard/bumpslider/engine/core"
	"github.com/hubastard/bumpslider/engine/geom"
)

// HandleEvent runs the drag state machine. A press inside the slider
// captures the pointer so the rest of the gesture is delivered here.
func (s *BumpSlider[T]) HandleEvent(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventPointerDown:
		return s.base.Bounds().Contains(geom.Pt(e.X, e.Y))
	case core.EventPointerDragStart:
		s.DragStart()
		return true
	case core.EventPointerDrag:
		s.Drag(e.X-e.StartX, e.Y-e.StartY)
		return true
	case core.EventPointerUp:
		s.PointerUp()
		return true
	}
	return false
}

// DragStart records the offset of the current value.
func (s *BumpSlider[T]) DragStart() {
	s.dragging = true
	s.dragStartOffset = s.ValueToOffset(s.value)
	s.log.WithField("value", s.value).Debug("drag start")
}

// Drag moves the value by the pointer displacement since the drag started.
// Right and up increase the offset.
func (s *BumpSlider[T]) Drag(dx, dy float32) {
	if !s.dragging {
		return
	}
	f := s.frame()
	s.updateValue(s.OffsetToValue(s.dragStartOffset + f.travelDelta(dx, dy)))
}

// PointerUp ends the drag and delivers a pending notification.
func (s *BumpSlider[T]) PointerUp() {
	if s.dragging {
		s.log.WithField("value", s.value).Debug("drag end")
	}
	s.dragging = false
	s.flushPending()
}
