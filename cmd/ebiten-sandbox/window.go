package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hubastard/bumpslider/engine/core"
)

// window adapts ebiten's global window to core.Window. Events are produced
// by input.poll during Update, so the callback is unused.
type window struct {
	w, h    int
	resized bool
	closing bool
}

func (w *window) PollEvents()                       {}
func (w *window) SwapBuffers()                      {}
func (w *window) ShouldClose() bool                 { return w.closing }
func (w *window) RequestClose()                     { w.closing = true }
func (w *window) FramebufferSize() (int, int)       { return w.w, w.h }
func (w *window) SetTitle(title string)             { ebiten.SetWindowTitle(title) }
func (w *window) SetEventCallback(func(core.Event)) {}
