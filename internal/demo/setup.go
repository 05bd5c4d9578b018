package demo

import (
	"fmt"

	"github.com/hubastard/bumpslider/engine/config"
	"github.com/hubastard/bumpslider/engine/core"
	"github.com/hubastard/bumpslider/engine/text"
)

// Build assembles the showcase layer from cfg for a w x h frame. Missing
// persistence or theme watching is logged and skipped; a bad font or theme
// is an error.
func Build(cfg config.Config, w, h int) (*UILayer, error) {
	var font *text.Font
	if cfg.Font != "" {
		f, err := text.LoadTTF(cfg.Font)
		if err != nil {
			return nil, err
		}
		font = f
	}
	th, err := cfg.LoadTheme("")
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	d := New(cfg.LiveUpdate)
	d.SetTheme(th)
	l := NewUILayer(d, w, h, font)

	if cfg.StateApp != "" {
		if s, err := config.OpenState(cfg.StateApp); err != nil {
			log.WithError(err).Warn("slider state disabled")
		} else {
			l.WithState(s)
		}
	}
	if cfg.IsThemeFile() {
		if tw, err := config.WatchTheme(cfg.ThemePath("")); err != nil {
			log.WithError(err).Warn("theme reload disabled")
		} else {
			l.WithThemeWatcher(tw)
		}
	}
	return l, nil
}

// Attach pushes l and a debug overlay onto the engine's layer stack.
func Attach(e *core.Engine, l *UILayer) *DebugLayer {
	dbg := NewDebugLayer(l)
	e.Layers.Push(e, l)
	e.Layers.Push(e, dbg)
	return dbg
}
