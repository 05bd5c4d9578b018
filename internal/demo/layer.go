package demo

import (
	"image"

	"github.com/hubastard/bumpslider/engine/config"
	"github.com/hubastard/bumpslider/engine/core"
	"github.com/hubastard/bumpslider/engine/gfx/renderer2d"
	"github.com/hubastard/bumpslider/engine/profiler"
	"github.com/hubastard/bumpslider/engine/text"
)

// UILayer renders the showcase into a CPU frame and feeds it input. The
// frame is only redrawn when the widget tree reports damage.
type UILayer struct {
	Demo *Demo

	r2d     *renderer2d.Renderer2D
	state   *config.StateStore
	watcher *config.ThemeWatcher
	force   bool
	drawn   bool
}

// NewUILayer allocates a w x h frame. A nil font uses the built-in face.
func NewUILayer(d *Demo, w, h int, font *text.Font) *UILayer {
	return &UILayer{
		Demo:  d,
		r2d:   renderer2d.New(image.NewRGBA(image.Rect(0, 0, w, h)), font),
		force: true,
	}
}

// WithState restores slider values from s on attach and saves them on
// detach or when S is pressed.
func (l *UILayer) WithState(s *config.StateStore) *UILayer { l.state = s; return l }

// WithThemeWatcher applies themes reloaded by w. The layer closes w on
// detach.
func (l *UILayer) WithThemeWatcher(w *config.ThemeWatcher) *UILayer { l.watcher = w; return l }

func (l *UILayer) Renderer() *renderer2d.Renderer2D { return l.r2d }

// Frame is the current render target. It changes on resize.
func (l *UILayer) Frame() *image.RGBA { return l.r2d.Target() }

// Drawn reports whether the last OnRender repainted the frame.
func (l *UILayer) Drawn() bool { return l.drawn }

// Invalidate forces a full repaint on the next render.
func (l *UILayer) Invalidate() { l.force = true }

func (l *UILayer) OnAttach(e *core.Engine) {
	if l.state == nil {
		return
	}
	nodes, err := l.state.Load()
	if err != nil {
		log.WithError(err).Warn("restore slider state")
		return
	}
	if nodes == nil {
		return
	}
	if err := l.Demo.Apply(nodes); err != nil {
		log.WithError(err).Warn("restore slider state")
	}
	log.WithField("nodes", len(nodes)).Info("slider state restored")
}

func (l *UILayer) OnDetach(e *core.Engine) {
	l.save()
	if l.watcher != nil {
		if err := l.watcher.Close(); err != nil {
			log.WithError(err).Warn("close theme watcher")
		}
		l.watcher = nil
	}
}

func (l *UILayer) save() {
	if l.state == nil {
		return
	}
	if err := l.state.Save(l.Demo.Document()); err != nil {
		log.WithError(err).Error("save slider state")
		return
	}
	log.Debug("slider state saved")
}

func (l *UILayer) OnUpdate(e *core.Engine, dt float64) {
	if l.watcher == nil {
		return
	}
	if t, ok := l.watcher.Poll(); ok {
		l.Demo.SetTheme(t)
	}
}

func (l *UILayer) OnRender(e *core.Engine, alpha float64) {
	done := profiler.Start("UILayer.OnRender")
	l.drawn = l.Demo.Render(l.r2d, l.force)
	l.force = false
	done()
}

func (l *UILayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		if v.W > 0 && v.H > 0 {
			l.r2d.Resize(v.W, v.H)
			l.force = true
		}
	case core.EventPointerDown, core.EventPointerDragStart, core.EventPointerDrag, core.EventPointerUp:
		return l.Demo.Root.HandleEvent(ev)
	case core.EventKey:
		if !v.Down {
			return false
		}
		switch v.Key {
		case core.KeyT:
			l.Demo.CycleTheme()
			return true
		case core.KeyS:
			l.save()
			return true
		case core.KeyR:
			l.Demo.Reset()
			return true
		case core.KeyEscape:
			if e.Window != nil {
				e.Window.RequestClose()
			}
			return true
		}
	}
	return false
}
