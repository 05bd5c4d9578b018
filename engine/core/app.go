package core

import (
	"image"
	"time"

	"github.com/hubastard/bumpslider/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   *LayerStack
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer presents a CPU-rendered frame on the window.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(c colors.Color)
	Present(frame *image.RGBA)
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Pointer gestures are synthesized by Input from raw mouse events. Only the
// left button produces them.

// EventPointerDown is sent when the button is pressed.
type EventPointerDown struct{ X, Y float32 }

func (EventPointerDown) isEvent() {}

// EventPointerDragStart is sent once the pointer has moved past the drag
// threshold with the button held.
type EventPointerDragStart struct{ StartX, StartY, X, Y float32 }

func (EventPointerDragStart) isEvent() {}

// EventPointerDrag carries the gesture's start point and the current point.
type EventPointerDrag struct{ StartX, StartY, X, Y float32 }

func (EventPointerDrag) isEvent() {}

// EventPointerUp ends a gesture. Dragged reports whether a drag started.
type EventPointerUp struct {
	StartX, StartY, X, Y float32
	Dragged              bool
}

func (EventPointerUp) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyT
	KeyS
	KeyR
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
	// DragThreshold is the distance in pixels the pointer must travel with
	// the button held before a drag starts.
	DragThreshold float32
}
