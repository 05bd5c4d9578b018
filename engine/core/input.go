package core

import "github.com/chewxy/math32"

const DefaultDragThreshold = 3

type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY float64

	threshold      float32
	pressed        bool
	dragging       bool
	startX, startY float32
	gestures       []Event
}

func NewInput(dragThreshold float32) *Input {
	if dragThreshold < 0 {
		dragThreshold = 0
	}
	return &Input{
		keys:      map[Key]bool{},
		buttons:   map[MouseButton]bool{},
		threshold: dragThreshold,
	}
}

// Handle records ev and returns the pointer gestures it completes, in the
// order they should be delivered.
func (in *Input) Handle(ev Event) []Event {
	in.gestures = nil
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
		in.moved()
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
		if e.Button == MouseLeft {
			in.leftButton(e.Down)
		}
	}
	return in.gestures
}

func (in *Input) pos() (float32, float32) { return float32(in.mouseX), float32(in.mouseY) }

func (in *Input) leftButton(down bool) {
	x, y := in.pos()
	if down {
		if in.pressed {
			return
		}
		in.pressed, in.dragging = true, false
		in.startX, in.startY = x, y
		in.emit(EventPointerDown{X: x, Y: y})
		return
	}
	if !in.pressed {
		return
	}
	in.emit(EventPointerUp{StartX: in.startX, StartY: in.startY, X: x, Y: y, Dragged: in.dragging})
	in.pressed, in.dragging = false, false
}

func (in *Input) moved() {
	if !in.pressed {
		return
	}
	x, y := in.pos()
	if !in.dragging {
		if math32.Hypot(x-in.startX, y-in.startY) < in.threshold {
			return
		}
		in.dragging = true
		in.emit(EventPointerDragStart{StartX: in.startX, StartY: in.startY, X: x, Y: y})
	}
	in.emit(EventPointerDrag{StartX: in.startX, StartY: in.startY, X: x, Y: y})
}

func (in *Input) emit(ev Event) { in.gestures = append(in.gestures, ev) }

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return in.buttons[b] }
func (in *Input) Mouse() (float64, float64)       { return in.mouseX, in.mouseY }
func (in *Input) Dragging() bool                  { return in.dragging }
