package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hubastard/bumpslider/engine/core"
)

var keys = map[ebiten.Key]core.Key{
	ebiten.KeyEscape: core.KeyEscape,
	ebiten.KeySpace:  core.KeySpace,
	ebiten.KeyT:      core.KeyT,
	ebiten.KeyS:      core.KeyS,
	ebiten.KeyR:      core.KeyR,
}

var buttons = map[ebiten.MouseButton]core.MouseButton{
	ebiten.MouseButtonLeft:   core.MouseLeft,
	ebiten.MouseButtonRight:  core.MouseRight,
	ebiten.MouseButtonMiddle: core.MouseMiddle,
}

// input turns ebiten's polled state into core events.
type input struct {
	x, y  int
	known bool
}

func (in *input) poll(emit func(core.Event)) {
	mods := modifiers()

	x, y := ebiten.CursorPosition()
	if !in.known || x != in.x || y != in.y {
		in.x, in.y, in.known = x, y, true
		emit(core.EventMouseMove{X: float64(x), Y: float64(y)})
	}

	for eb, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			emit(core.EventMouseButton{Button: b, Down: true, Mods: mods})
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			emit(core.EventMouseButton{Button: b, Down: false, Mods: mods})
		}
	}

	for ek, k := range keys {
		if inpututil.IsKeyJustPressed(ek) {
			emit(core.EventKey{Key: k, Down: true, Mods: mods})
		}
		if inpututil.IsKeyJustReleased(ek) {
			emit(core.EventKey{Key: k, Down: false, Mods: mods})
		}
	}

	if xoff, yoff := ebiten.Wheel(); xoff != 0 || yoff != 0 {
		emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	}
}

func modifiers() core.Mod {
	var m core.Mod
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= core.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= core.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= core.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= core.ModSuper
	}
	return m
}
