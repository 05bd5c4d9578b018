package demo

import (
	"fmt"
	"time"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/core"
	"github.com/hubastard/bumpslider/engine/geom"
	"github.com/hubastard/bumpslider/engine/profiler"
	"github.com/hubastard/bumpslider/engine/ui"
)

// DebugLayer overlays frame timing, painter statistics and memory figures
// on the UI frame. Space toggles it.
type DebugLayer struct {
	ui      *UILayer
	timer   profiler.FrameTimer
	visible bool
}

func NewDebugLayer(u *UILayer) *DebugLayer { return &DebugLayer{ui: u} }

func (l *DebugLayer) Visible() bool { return l.visible }

func (l *DebugLayer) OnAttach(e *core.Engine) {}
func (l *DebugLayer) OnDetach(e *core.Engine) {}

// OnUpdate keeps the UI repainting while the overlay is up, so the overlay
// is drawn over a fresh frame every time.
func (l *DebugLayer) OnUpdate(e *core.Engine, dt float64) {
	if l.visible {
		l.ui.Invalidate()
	}
}

func (l *DebugLayer) OnRender(e *core.Engine, alpha float64) {
	l.timer.Tick(time.Now())
	if !l.visible || !l.ui.Drawn() {
		return
	}
	done := profiler.Start("DebugLayer.OnRender")
	defer done()

	r := l.ui.Renderer()
	stats := r.Stats()
	heading := func(s string) *ui.UILabel { return ui.Label(s).Color(colors.Yellow) }

	children := []ui.UIElement{
		heading(fmt.Sprintf("Frame %d", l.timer.Frames())),
		ui.Label(fmt.Sprintf("  %.3f ms (%.1f FPS)", float64(l.timer.Average().Microseconds())/1000, l.timer.FPS())),
		heading("Painter"),
		ui.Label(fmt.Sprintf("  fills %d  strokes %d", stats.Fills, stats.Strokes)),
		ui.Label(fmt.Sprintf("  texts %d  blits %d", stats.Texts, stats.Blits)),
		ui.Label(fmt.Sprintf("  surfaces %d", stats.Surfaces)),
		heading("Memory"),
		ui.Label(fmt.Sprintf("  usage %.2f MB", float64(profiler.MemoryUsage())/(1<<20))),
		ui.Label(fmt.Sprintf("  allocs %d", profiler.MemoryAllocs())),
		ui.Label(fmt.Sprintf("  goroutines %d", profiler.NumGoroutine())),
	}
	if scopes := profiler.Scopes(); len(scopes) > 0 {
		children = append(children, heading("Scopes"))
		for _, s := range scopes {
			children = append(children, ui.Label(fmt.Sprintf("  %s %v", s.Name, s.Mean().Round(time.Microsecond))))
		}
	}

	b := r.Target().Bounds()
	panel := ui.View(children...).
		FlowDirection(ui.Vertical).
		Padding(12).
		Gap(2).
		BgColor(colors.Black.WithAlpha(0.75))
	panel.Draw(&ui.Context{
		Viewport: geom.R(float32(b.Dx())-300, 0, 300, float32(b.Dy())),
		Painter:  r,
		Theme:    colors.MidnightTheme(),
	})
}

func (l *DebugLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeySpace {
		l.visible = !l.visible
		l.ui.Invalidate()
		return true
	}
	return false
}
