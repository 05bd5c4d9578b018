package core

import (
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "core")

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	threshold := cfg.DragThreshold
	if threshold == 0 {
		threshold = DefaultDragThreshold
	}
	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(threshold),
		Layers:   &LayerStack{},
		start:    time.Now(),
	}
	win.SetEventCallback(func(ev Event) {
		if re, ok := ev.(EventResize); ok {
			if re.W < 1 || re.H < 1 {
				return
			}
			rend.Resize(re.W, re.H)
		}
		eng.Dispatch(app, ev)
	})

	app.OnStart(eng)
	log.WithFields(logrus.Fields{"width": w, "height": h, "title": cfg.Title}).Info("engine started")

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(cfg.ClearColor)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)

		win.SwapBuffers()
	}

	eng.Layers.ForEachReverse(func(l Layer) bool {
		l.OnDetach(eng)
		return false
	})
	app.OnShutdown(eng)
	log.WithField("uptime", eng.Uptime().Round(time.Millisecond)).Info("engine exit")
	return nil
}

// Dispatch records ev in the input state and delivers it, followed by any
// pointer gestures it produced. Layers see events top-down and may stop
// propagation; the app always sees them.
func (e *Engine) Dispatch(app App, ev Event) {
	gestures := e.Input.Handle(ev)
	e.deliver(app, ev)
	for _, g := range gestures {
		e.deliver(app, g)
	}
}

func (e *Engine) deliver(app App, ev Event) {
	e.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(e, ev) })
	if app != nil {
		app.OnEvent(e, ev)
	}
}

// NewHeadless returns an engine without a window or renderer, for tools and
// tests that drive layers and input directly.
func NewHeadless(dragThreshold float32) *Engine {
	return &Engine{Input: NewInput(dragThreshold), Layers: &LayerStack{}, start: time.Now()}
}
